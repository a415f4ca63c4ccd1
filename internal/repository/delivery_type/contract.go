package delivery_type

import "context"

type Querier interface {
	Get(ctx context.Context, dst any, sql string, args ...any) error
}
