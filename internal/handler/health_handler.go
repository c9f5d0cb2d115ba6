package handler

import (
	"envelope-orchestrator/internal/model/requestresponse"
	"envelope-orchestrator/internal/util"
	"net/http"
	"time"
)

// Health godoc
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.HealthResponse
// @Router /api/health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, requestresponse.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
