package order

import (
	"context"
	"fmt"

	"github.com/avorobyev/go-order-service/internal/app/entity"
)

type OrderReader interface {
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error)
	AccountStatistics(ctx context.Context, id entity.AccountID) (entity.AccountStatistics, error)
}

// Selector is the read path for orders. It never mutates anything and
// only sees committed rows.
type Selector struct {
	storage OrderReader
}

func NewSelector(storage OrderReader) *Selector {
	return &Selector{
		storage: storage,
	}
}

func (s *Selector) GetByID(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	order, err := s.storage.GetOrder(ctx, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while getting order by id: %w", err)
	}

	return order, nil
}

func (s *Selector) List(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error) {
	orders, err := s.storage.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error while listing orders: %w", err)
	}

	return orders, nil
}

func (s *Selector) ListByAccount(ctx context.Context, accountID entity.AccountID) (entity.Orders, error) {
	orders, err := s.storage.ListOrders(ctx, entity.OrderFilter{AccountID: accountID})
	if err != nil {
		return nil, fmt.Errorf("error while listing account orders: %w", err)
	}

	return orders, nil
}

func (s *Selector) Statistics(ctx context.Context, accountID entity.AccountID) (entity.AccountStatistics, error) {
	stats, err := s.storage.AccountStatistics(ctx, accountID)
	if err != nil {
		return entity.AccountStatistics{}, fmt.Errorf("error while getting account statistics: %w", err)
	}

	return stats, nil
}
