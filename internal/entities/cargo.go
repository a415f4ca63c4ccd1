package entities

import "time"

type Cargo struct {
	ID        int64
	Name      string
	Weight    float64 // кг
	Dimension float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CargoCreate struct {
	Name      string
	Weight    float64
	Dimension float64
}
