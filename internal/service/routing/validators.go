package routing

import (
	"fmt"
	"math"

	"logistics/internal/entities"
)

func validateRoutingRequest(request entities.RoutingRequest) error {
	stops := len(request.Coordinates)
	if stops == 0 {
		return fmt.Errorf("%w: coordinates are required", ErrInvalidRoutingRequest)
	}

	for i, point := range request.Coordinates {
		if len(point) != 2 {
			return fmt.Errorf("%w: coordinate %d must be a pair", ErrInvalidRoutingRequest, i)
		}
		if !isFinite(point[0]) || !isFinite(point[1]) {
			return fmt.Errorf("%w: coordinate %d is not a number", ErrInvalidRoutingRequest, i)
		}
	}

	if request.NumVehicles <= 0 {
		return fmt.Errorf("%w: num_vehicles must be positive", ErrInvalidRoutingRequest)
	}

	if request.Depot < 0 || request.Depot >= stops {
		return fmt.Errorf("%w: depot %d is out of range [0, %d)", ErrInvalidRoutingRequest, request.Depot, stops)
	}

	if request.MaxTravel < 0 || !isFinite(request.MaxTravel) {
		return fmt.Errorf("%w: max_travel must not be negative", ErrInvalidRoutingRequest)
	}

	vectors := []struct {
		name     string
		values   []float64
		expected int
	}{
		{"weight", request.Weights, stops},
		{"dimension", request.Dimensions, stops},
		{"vehicle_weight", request.VehicleWeights, request.NumVehicles},
		{"vehicle_dimension", request.VehicleDimensions, request.NumVehicles},
	}
	for _, v := range vectors {
		if err := validateVector(v.name, v.values, v.expected); err != nil {
			return err
		}
	}

	return nil
}

// пустой вектор допустим: решатель подставит свои значения
func validateVector(name string, values []float64, expected int) error {
	if len(values) == 0 {
		return nil
	}
	if len(values) != expected {
		return fmt.Errorf("%w: %s has %d values, expected %d", ErrInvalidRoutingRequest, name, len(values), expected)
	}
	for i, v := range values {
		if v < 0 || !isFinite(v) {
			return fmt.Errorf("%w: %s[%d] must not be negative", ErrInvalidRoutingRequest, name, i)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
