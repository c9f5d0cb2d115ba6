package util

import (
	"encoding/json"
	"envelope-orchestrator/internal/model/requestresponse"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	HandleErrorWithCode(w, message, http.StatusText(statusCode), statusCode)
}

// HandleErrorWithCode : ошибка с машинно-читаемым кодом вместо текста статуса
func HandleErrorWithCode(w http.ResponseWriter, message, code string, statusCode int) {
	WriteJSON(w, statusCode, requestresponse.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    statusCode,
	})
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[util] ошибка сериализации ответа: %v", err)
	}
}
