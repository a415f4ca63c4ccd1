package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	DefaultPage  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

// StatusFilter ограничивает выборку набором статусов, пустой не ограничивает.
// Из JSON читается и строкой, и массивом строк.
type StatusFilter []OrderStatusType

func NewStatusFilter(statuses ...OrderStatusType) StatusFilter {
	return StatusFilter(statuses).Normalize()
}

// ParseStatusFilter принимает значения query в любой из форм
// ?status=a, ?status=a&status=b, ?status=a,b.
func ParseStatusFilter(values []string) StatusFilter {
	statuses := make([]OrderStatusType, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			statuses = append(statuses, OrderStatusType(part))
		}
	}
	return StatusFilter(statuses).Normalize()
}

func (f *StatusFilter) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var single OrderStatusType
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("status filter: %w", err)
		}
		*f = NewStatusFilter(single)
		return nil
	}

	var many []OrderStatusType
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("status filter: %w", err)
	}
	*f = NewStatusFilter(many...)
	return nil
}

// Normalize убирает пустые значения и дубликаты, сохраняя порядок первых вхождений.
func (f StatusFilter) Normalize() StatusFilter {
	if len(f) == 0 {
		return nil
	}

	seen := make(map[OrderStatusType]struct{}, len(f))
	result := make(StatusFilter, 0, len(f))
	for _, status := range f {
		if status == "" {
			continue
		}
		if _, ok := seen[status]; ok {
			continue
		}
		seen[status] = struct{}{}
		result = append(result, status)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// Invalid возвращает первый статус вне допустимого набора.
func (f StatusFilter) Invalid() (OrderStatusType, bool) {
	for _, status := range f {
		if !status.IsValid() {
			return status, true
		}
	}
	return "", false
}

func (f StatusFilter) Strings() []string {
	result := make([]string, len(f))
	for i, status := range f {
		result[i] = status.String()
	}
	return result
}

type CityFilter string

const (
	CityAny     CityFilter = "any"
	CityMatch   CityFilter = "match"
	CityExclude CityFilter = "exclude"
)

func ParseCityFilter(value string) (CityFilter, bool) {
	switch CityFilter(value) {
	case "", CityAny:
		return CityAny, true
	case CityMatch:
		return CityMatch, true
	case CityExclude:
		return CityExclude, true
	default:
		return "", false
	}
}

func (c CityFilter) String() string {
	return string(c)
}

// OrderFilter описывает страницу списка заказов.
// Page с нуля; nil Page и Limit заменяются на DefaultPage и DefaultLimit.
type OrderFilter struct {
	Statuses StatusFilter
	City     CityFilter
	Page     *int
	Limit    *int
}

type OrderPage struct {
	Page   int
	Limit  int
	Total  int64
	Orders []Order
}

// OrderQuery — разобранный OrderFilter для хранилища.
type OrderQuery struct {
	Statuses      StatusFilter
	City          CityFilter
	CityMatchText string
	Offset        int
	Limit         int
}
