package order_get

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"logistics/internal/handlers/rest/converters"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/order"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, fmt.Errorf("%w: %q", order.ErrInvalidOrderID, idStr))
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, order.ErrInvalidOrderID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.Error("get order",
				logger.NewField("order", id),
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.OrderToDTO(orderEntity))
}
