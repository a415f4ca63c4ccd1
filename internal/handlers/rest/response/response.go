package response

import (
	"encoding/json"
	"net/http"

	"logistics/internal/generated/dto"
	"logistics/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response",
			logger.NewField("error", err),
		)
	}
}

// Error пишет тело dto.Error; для 5xx текст ошибки наружу не отдается.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := http.StatusText(status)
	if status < http.StatusInternalServerError && err != nil {
		message = err.Error()
	}

	JSON(w, log, status, dto.Error{Message: message})
}
