package routing

import "errors"

var (
	ErrInvalidRoutingRequest = errors.New("invalid routing request")

	// ErrExternalProcessFailure: решатель не запустился или его вывод не расписание.
	ErrExternalProcessFailure = errors.New("external process failure")
)
