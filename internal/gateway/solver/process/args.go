package process

import (
	"encoding/json"
	"fmt"

	"logistics/internal/entities"
)

// buildArgs сериализует каждое поле запроса в отдельный JSON-аргумент.
// Решатель читает их по позиции: порядок здесь и есть контракт.
func buildArgs(request entities.RoutingRequest) ([]string, error) {
	coordinates := request.Coordinates
	if coordinates == nil {
		coordinates = [][]float64{}
	}

	values := []any{
		coordinates,
		request.NumVehicles,
		request.Depot,
		orEmpty(request.Weights),
		orEmpty(request.VehicleWeights),
		orEmpty(request.Dimensions),
		orEmpty(request.VehicleDimensions),
		request.MaxTravel,
	}

	args := make([]string, 0, len(values))
	for i, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode solver argument %d: %w", i, err)
		}
		args = append(args, string(raw))
	}
	return args, nil
}

func orEmpty(values []float64) []float64 {
	if values == nil {
		return []float64{}
	}
	return values
}
