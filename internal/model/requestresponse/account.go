package requestresponse

import "envelope-orchestrator/internal/model"

// AccountResponse : аккаунт провайдера без токенов
type AccountResponse struct {
	AccountID   string `json:"accountId" example:"b7d1c1a2-1111-2222-3333-444455556666"`
	AccountName string `json:"accountName" example:"Demo account"`
	Email       string `json:"email" example:"owner@example.com"`
	IsDefault   bool   `json:"isDefault" example:"true"`
}

func AccountResponseFromModel(account *model.Account) AccountResponse {
	return AccountResponse{
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		Email:       account.Email,
		IsDefault:   account.IsDefault,
	}
}

type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// EnvelopeListResponse : конверты за последние 30 дней
type EnvelopeListResponse struct {
	Envelopes    []model.EnvelopeListItem `json:"envelopes"`
	TotalResults string                   `json:"totalResults" example:"12"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"описание ошибки"`
	Code    int    `json:"code" example:"400"`
}
