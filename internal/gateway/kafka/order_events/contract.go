package order_events

import "logistics/pkg/logger"

type publisherLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
