package orders_delete

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gopkg.in/go-playground/validator.v9"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/validation"
	"logistics/internal/service/order"
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
	var request dto.OrdersDelete
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

	err = h.service.DeleteOrders(r.Context(), request.Ids)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidReference):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.Error("delete orders",
				logger.NewField("orders", request.Ids),
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("orders deleted",
		logger.NewField("orders", request.Ids),
	)
	w.WriteHeader(http.StatusNoContent)
}
