//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_overdue_test
package order_overdue

import (
	"context"
)

type Service interface {
	CountOverdueOrders(ctx context.Context) (int64, error)
}
