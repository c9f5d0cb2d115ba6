package model

import "time"

// Account : аккаунт провайдера подписи, привязанный к пользователю
type Account struct {
	ID           int64     `db:"id" json:"-"`
	UserID       string    `db:"user_id" json:"userId"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	IsDefault    bool      `db:"is_default" json:"isDefault"`
	AccountID    string    `db:"account_id" json:"accountId"`
	AccountName  string    `db:"account_name" json:"accountName"`
	AccessToken  string    `db:"access_token" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	ExpiresAt    time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// OAuthTokens : ответ OAuth-эндпоинта провайдера
type OAuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// ProviderCredentials : токен и адрес API, с которыми выполняется один запрос
type ProviderCredentials struct {
	AccessToken string
	AccountID   string
	APIBaseURL  string
}

// EnvelopeListItem : элемент списка конвертов провайдера
type EnvelopeListItem struct {
	EnvelopeID        string `json:"envelopeId"`
	Status            string `json:"status"`
	EmailSubject      string `json:"emailSubject"`
	CreatedDateTime   string `json:"createdDateTime"`
	SentDateTime      string `json:"sentDateTime,omitempty"`
	CompletedDateTime string `json:"completedDateTime,omitempty"`
}

type EnvelopeList struct {
	Envelopes    []EnvelopeListItem `json:"envelopes"`
	TotalSetSize FlexString         `json:"totalSetSize"`
}

// DownloadedFile : содержимое документа, скачанного у провайдера
type DownloadedFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// CachedToken : токен провайдера в кэше вместе с адресом API, для которого он выдан
type CachedToken struct {
	AccessToken string `json:"accessToken"`
	AccountID   string `json:"accountId,omitempty"`
	APIBaseURL  string `json:"apiBaseUrl,omitempty"`
}
