package delivery_deadline

import (
	"time"
)

type DeliveryTimeFactory struct{}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{}
}

// CalculateDeadline сдвигает baseTime на deliveryDays календарных дней с тем же
// временем суток, переходя через границы месяца и года (28 янв + 5 = 2 фев).
// Отрицательный срок считается нулевым.
func (d *DeliveryTimeFactory) CalculateDeadline(deliveryDays int, baseTime time.Time) time.Time {
	if deliveryDays <= 0 {
		return baseTime
	}
	return baseTime.AddDate(0, 0, deliveryDays)
}
