package order_overdue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OverdueOrders = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "orders_overdue_total",
		Help: "Active orders (pending or in_transit) whose delivery deadline has passed",
	},
)
