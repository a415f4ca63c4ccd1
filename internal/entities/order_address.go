package entities

import "time"

type OrderAddress struct {
	ID        int64
	Address   string
	Longitude float64
	Latitude  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderAddressCreate struct {
	Address   string
	Longitude float64
	Latitude  float64
}
