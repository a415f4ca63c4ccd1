package routing_post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gopkg.in/go-playground/validator.v9"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/converters"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/validation"
	"logistics/internal/service/routing"
	"logistics/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	validate *validator.Validate
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		validate: validation.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.RoutingRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	err = h.validate.Struct(request)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	schedule, err := h.service.SolveRouting(r.Context(), converters.RoutingRequestToDomain(request))
	if err != nil {
		switch {
		case errors.Is(err, routing.ErrInvalidRoutingRequest):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, routing.ErrExternalProcessFailure):
			h.log.Warn("solve routing",
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusBadGateway, err)
		case errors.Is(err, context.DeadlineExceeded):
			response.Error(w, h.log, http.StatusGatewayTimeout, err)
		default:
			h.log.Error("solve routing",
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(schedule)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write schedule response")
	}
}
