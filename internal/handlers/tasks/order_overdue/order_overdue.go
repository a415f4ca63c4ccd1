package order_overdue

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"logistics/pkg/logger"
)

type OrderOverdue struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	gauge    prometheus.Gauge
}

func NewOrderOverdue(log logger.Logger, service Service, interval time.Duration) *OrderOverdue {
	return &OrderOverdue{
		log:      log,
		service:  service,
		interval: interval,
		gauge:    OverdueOrders,
	}
}

func (o *OrderOverdue) TTL() time.Duration {
	return o.interval
}

// Do пересчитывает просроченные заказы; при ошибке gauge сохраняет прошлое значение.
func (o *OrderOverdue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	overdue, err := o.service.CountOverdueOrders(ctxWithTimeout)
	if err != nil {
		return err
	}

	o.gauge.Set(float64(overdue))
	if overdue > 0 {
		o.log.With(
			logger.NewField("overdue_orders", overdue),
		).Info("order overdue check")
	}

	return nil
}

func (o *OrderOverdue) Info() string {
	return "order overdue check"
}
