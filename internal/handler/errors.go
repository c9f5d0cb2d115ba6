package handler

import (
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/util"
	"errors"
	"log"
	"net/http"
)

const (
	codeAccountNotFound = "ACCOUNT_NOT_FOUND"
	codeNoAccounts      = "NO_ACCOUNTS"
)

// handleServiceError : ошибки валидации и выбора аккаунта отдаются клиенту как есть,
// детали ошибок внешних сервисов остаются в логе
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &validationErr):
		util.HandleError(w, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, model.ErrValidation):
		util.HandleError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrNoAccounts):
		util.HandleErrorWithCode(w, "нет подключенных аккаунтов провайдера подписи", codeNoAccounts, http.StatusBadRequest)
	case errors.Is(err, model.ErrAccountNotFound):
		util.HandleErrorWithCode(w, "указанный аккаунт провайдера подписи не найден", codeAccountNotFound, http.StatusBadRequest)
	case errors.Is(err, model.ErrUpstreamGeneration):
		log.Println(err)
		util.HandleError(w, "не удалось сгенерировать документы", http.StatusInternalServerError)
	case errors.Is(err, model.ErrUpstreamSubmission):
		log.Println(err)
		util.HandleError(w, "провайдер подписи не принял конверт", http.StatusInternalServerError)
	case errors.Is(err, model.ErrStatusSnapshot):
		log.Println(err)
		util.HandleError(w, "не удалось получить состояние конверта", http.StatusInternalServerError)
	case errors.Is(err, model.ErrCredentials):
		log.Println(err)
		util.HandleError(w, "нет доступа к провайдеру подписи", http.StatusInternalServerError)
	default:
		log.Println(err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// handleAccountError : для API аккаунтов отсутствующий аккаунт означает 404
func handleAccountError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrAccountNotFound) {
		util.HandleErrorWithCode(w, "аккаунт не найден или доступ запрещён", codeAccountNotFound, http.StatusNotFound)
		return
	}
	handleServiceError(w, err)
}
