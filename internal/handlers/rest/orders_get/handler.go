package orders_get

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"logistics/internal/entities"
	"logistics/internal/handlers/rest/converters"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/order"
	"logistics/pkg/logger"
)

var errInvalidQuery = errors.New("invalid query parameter")

type Handler struct {
	log     handlerLogger
	service Service
	city    *entities.CityFilter
}

// New обслуживает GET /orders, город берется из параметра city.
func New(log handlerLogger, service Service) *Handler {
	return newHandler(log, service, nil)
}

// NewForCity обслуживает маршруты с зашитым фильтром города (/orders/can-tho, /orders/not-can-tho).
func NewForCity(log handlerLogger, service Service, city entities.CityFilter) *Handler {
	return newHandler(log, service, &city)
}

func newHandler(log handlerLogger, service Service, city *entities.CityFilter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		city:    city,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r.URL.Query())
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	page, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrInvalidCityFilter),
			errors.Is(err, order.ErrInvalidPagination):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.Error("list orders",
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.OrderPageToDTO(page))
}

func (h *Handler) parseFilter(query url.Values) (entities.OrderFilter, error) {
	filter := entities.OrderFilter{
		Statuses: entities.ParseStatusFilter(query["status"]),
		City:     entities.CityFilter(query.Get("city")),
	}
	if h.city != nil {
		filter.City = *h.city
	}

	var err error
	filter.Page, err = optionalInt(query, "page")
	if err != nil {
		return entities.OrderFilter{}, err
	}
	filter.Limit, err = optionalInt(query, "limit")
	if err != nil {
		return entities.OrderFilter{}, err
	}

	return filter, nil
}

func optionalInt(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidQuery, key, raw)
	}
	return &value, nil
}
