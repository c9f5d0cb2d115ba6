package handler

import (
	"context"
	"envelope-orchestrator/internal/model/requestresponse"
	"envelope-orchestrator/internal/ports"
	"envelope-orchestrator/internal/security"
	"envelope-orchestrator/internal/util"
	"github.com/go-chi/chi/v5"
	"net/http"
)

type AccountHandler struct {
	ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService}
}

// ListAccounts godoc
// @Summary Аккаунты провайдера пользователя
// @Tags Accounts
// @Produce json
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 200 {object} requestresponse.ListAccountsResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	accounts, err := h.AccountService.ListAccounts(ctx, security.UserIDFromContext(ctx))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.ListAccountsResponse{Accounts: make([]requestresponse.AccountResponse, 0, len(accounts))}
	for i := range accounts {
		response.Accounts = append(response.Accounts, requestresponse.AccountResponseFromModel(&accounts[i]))
	}
	util.WriteJSON(w, http.StatusOK, response)
}

// GetAccount godoc
// @Summary Аккаунт провайдера
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 200 {object} requestresponse.AccountResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Аккаунт не найден"
// @Router /api/accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	account, err := h.AccountService.GetAccount(ctx, security.UserIDFromContext(ctx), chi.URLParam(r, "accountId"))
	if err != nil {
		handleAccountError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AccountResponseFromModel(account))
}

// SetDefaultAccount godoc
// @Summary Сделать аккаунт аккаунтом по умолчанию
// @Tags Accounts
// @Param accountId path string true "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 204 "Аккаунт по умолчанию изменён"
// @Failure 404 {object} requestresponse.ErrorResponse "Аккаунт не найден"
// @Router /api/accounts/{accountId}/default [put]
func (h *AccountHandler) SetDefaultAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	if err := h.AccountService.SetDefault(ctx, security.UserIDFromContext(ctx), chi.URLParam(r, "accountId")); err != nil {
		handleAccountError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount godoc
// @Summary Отвязать аккаунт провайдера
// @Tags Accounts
// @Param accountId path string true "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 204 "Аккаунт отвязан"
// @Failure 404 {object} requestresponse.ErrorResponse "Аккаунт не найден"
// @Router /api/accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	if err := h.AccountService.DeleteAccount(ctx, security.UserIDFromContext(ctx), chi.URLParam(r, "accountId")); err != nil {
		handleAccountError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
