package order_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gopkg.in/go-playground/validator.v9"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/converters"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	err = h.validate.Struct(orderCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), converters.OrderCreateToDomain(orderCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidShippingFee),
			errors.Is(err, order.ErrInvalidCargo),
			errors.Is(err, order.ErrInvalidReference):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.Error("create order",
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("order created",
		logger.NewField("order", created.ID),
	)
	response.JSON(w, h.log, http.StatusCreated, converters.OrderToDTO(created))
}
