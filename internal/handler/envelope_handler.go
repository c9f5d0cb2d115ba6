package handler

import (
	"context"
	"encoding/json"
	"envelope-orchestrator/internal/model/requestresponse"
	"envelope-orchestrator/internal/ports"
	"envelope-orchestrator/internal/security"
	"envelope-orchestrator/internal/util"
	"github.com/go-chi/chi/v5"
	"net/http"
	"time"
)

const (
	compositionTimeout = 90 * time.Second
	readTimeout        = 30 * time.Second
	maxRequestBody     = 50 << 20
)

type EnvelopeHandler struct {
	ports.EnvelopeService
	statusService ports.StatusService
}

func NewEnvelopeHandler(envelopeService ports.EnvelopeService, statusService ports.StatusService) *EnvelopeHandler {
	return &EnvelopeHandler{envelopeService, statusService}
}

// CreateEnvelope godoc
// @Summary Создание конверта из форм и PDF
// @Description Генерирует PDF для каждой формы, получает координаты полей подписи,
// объединяет подписантов по email и отправляет один конверт провайдеру.
// Клиентские PDF получают идентификаторы документов первыми.
// @Tags Envelopes
// @Accept json
// @Produce json
// @Param request body requestresponse.CreateEnvelopeRequest true "Формы, дополнительные PDF и тема письма"
// @Param accountId query string false "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 201 {object} model.EnvelopeSummary "Конверт создан"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный запрос"
// @Failure 500 {object} requestresponse.ErrorResponse "Ошибка внешнего сервиса"
// @Router /api/envelopes [post]
func (h *EnvelopeHandler) CreateEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), compositionTimeout)
	defer cancel()

	var req requestresponse.CreateEnvelopeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	summary, err := h.EnvelopeService.CreateEnvelope(ctx, security.UserIDFromContext(ctx), r.URL.Query().Get("accountId"), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, summary)
}

// CreateLinkedEnvelope godoc
// @Summary Создание конверта с явными ссылками на документы
// @Description documentId форм задаёт клиент (уникальные числовые строки),
// получатели ссылаются на документы и роли. Пустой список ролей означает все поля документа.
// @Tags Envelopes
// @Accept json
// @Produce json
// @Param request body requestresponse.CreateLinkedEnvelopeRequest true "Формы и получатели"
// @Param accountId query string false "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 201 {object} model.EnvelopeSummary "Конверт создан"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный запрос"
// @Failure 500 {object} requestresponse.ErrorResponse "Ошибка внешнего сервиса"
// @Router /api/envelopes/linked [post]
func (h *EnvelopeHandler) CreateLinkedEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), compositionTimeout)
	defer cancel()

	var req requestresponse.CreateLinkedEnvelopeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	summary, err := h.EnvelopeService.CreateLinkedEnvelope(ctx, security.UserIDFromContext(ctx), r.URL.Query().Get("accountId"), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, summary)
}

// GetSignersStatus godoc
// @Summary Прогресс подписания конверта
// @Description По каждому подписанту: какие документы подписаны полностью, и хронология конверта.
// @Tags Envelopes
// @Produce json
// @Param envelopeId path string true "Идентификатор конверта"
// @Param accountId query string false "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 200 {object} model.EnvelopeSignersStatus
// @Failure 500 {object} requestresponse.ErrorResponse "Не удалось получить состояние"
// @Router /api/envelopes/{envelopeId}/signers-status [get]
func (h *EnvelopeHandler) GetSignersStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	envelopeID := chi.URLParam(r, "envelopeId")
	if envelopeID == "" {
		util.HandleError(w, "envelopeId обязателен", http.StatusBadRequest)
		return
	}

	status, err := h.statusService.GetSignersStatus(ctx, security.UserIDFromContext(ctx), r.URL.Query().Get("accountId"), envelopeID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, status)
}

// ListEnvelopes godoc
// @Summary Конверты за последние 30 дней
// @Tags Envelopes
// @Produce json
// @Param accountId query string false "Аккаунт провайдера, по умолчанию аккаунт пользователя по умолчанию"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 200 {object} requestresponse.EnvelopeListResponse
// @Failure 400 {object} requestresponse.ErrorResponse "NO_ACCOUNTS или ACCOUNT_NOT_FOUND"
// @Failure 500 {object} requestresponse.ErrorResponse "Ошибка провайдера"
// @Router /api/envelopes [get]
func (h *EnvelopeHandler) ListEnvelopes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	list, err := h.EnvelopeService.ListEnvelopes(ctx, security.UserIDFromContext(ctx), r.URL.Query().Get("accountId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, list)
}

// GetEnvelope godoc
// @Summary Конверт с получателями и вкладками
// @Tags Envelopes
// @Produce json
// @Param envelopeId path string true "Идентификатор конверта"
// @Param accountId query string false "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 200 {object} object "Ответ провайдера без изменений"
// @Failure 500 {object} requestresponse.ErrorResponse "Ошибка провайдера"
// @Router /api/envelopes/{envelopeId} [get]
func (h *EnvelopeHandler) GetEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	details, err := h.EnvelopeService.GetEnvelope(ctx, security.UserIDFromContext(ctx), r.URL.Query().Get("accountId"), chi.URLParam(r, "envelopeId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(details)
}

// DownloadEnvelope godoc
// @Summary Ссылка на скачивание документов конверта
// @Description Документы скачиваются у провайдера, сохраняются в S3, возвращается временная ссылка.
// @Tags Envelopes
// @Produce json
// @Param envelopeId path string true "Идентификатор конверта"
// @Param type query string false "combined, archive или individual" default(combined)
// @Param documentId query string false "Документ для type=individual"
// @Param accountId query string false "Аккаунт провайдера"
// @Param X-User-ID header string false "Пользователь" default(default)
// @Success 200 {object} requestresponse.DownloadResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный тип или нет documentId"
// @Failure 500 {object} requestresponse.ErrorResponse "Ошибка скачивания"
// @Router /api/envelopes/{envelopeId}/download [get]
func (h *EnvelopeHandler) DownloadEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), compositionTimeout)
	defer cancel()

	query := r.URL.Query()
	download, err := h.EnvelopeService.DownloadEnvelope(
		ctx,
		security.UserIDFromContext(ctx),
		query.Get("accountId"),
		chi.URLParam(r, "envelopeId"),
		ports.DownloadKind(query.Get("type")),
		query.Get("documentId"),
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, download)
}
