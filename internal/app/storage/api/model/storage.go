package model

import (
	"context"

	"github.com/avorobyev/go-order-service/internal/app/entity"
)

// ApplyOrderFunc mutates an order inside a storage transaction.
// The order passed in is the current committed row, read under a row lock.
// Returning an error rolls the transaction back.
type ApplyOrderFunc func(order entity.Order) (entity.Order, error)

// GuardOrderFunc vets an order for deletion inside a storage transaction.
type GuardOrderFunc func(order entity.Order) error

type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	CreateAccount(ctx context.Context, account entity.Account) (entity.Account, error)
	GetAccountByID(ctx context.Context, id entity.AccountID) (entity.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (entity.Account, error)
	SetAccountActive(ctx context.Context, id entity.AccountID, active bool) (entity.Account, error)

	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	UpdateOrder(ctx context.Context, id entity.OrderID, apply ApplyOrderFunc) (entity.Order, error)
	DeleteOrder(ctx context.Context, id entity.OrderID, guard GuardOrderFunc) error
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error)
	AccountStatistics(ctx context.Context, id entity.AccountID) (entity.AccountStatistics, error)
}
