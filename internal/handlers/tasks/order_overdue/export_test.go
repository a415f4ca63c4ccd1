package order_overdue

import "github.com/prometheus/client_golang/prometheus"

func (o *OrderOverdue) SetGauge(gauge prometheus.Gauge) {
	o.gauge = gauge
}
