package order_events

import "time"

const (
	EventOrderCreated = "order.created"
	EventOrderDeleted = "order.deleted"
)

type orderEvent struct {
	Event      string    `json:"event"`
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
