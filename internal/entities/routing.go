package entities

import "encoding/json"

// RoutingRequest — задача маршрутизации с ограничением вместимости.
// Weights и Dimensions задаются на точку, VehicleWeights и VehicleDimensions на машину.
type RoutingRequest struct {
	Coordinates       [][]float64
	NumVehicles       int
	Depot             int
	Weights           []float64
	VehicleWeights    []float64
	Dimensions        []float64
	VehicleDimensions []float64
	MaxTravel         float64
}

// Schedule — ответ решателя, отдается клиенту без изменений.
type Schedule json.RawMessage

func (s Schedule) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}
