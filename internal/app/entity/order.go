package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPendingOrder   OrderStatus = `pending`
	StatusCompletedOrder OrderStatus = `completed`
	StatusCancelledOrder OrderStatus = `cancelled`
)

// transitions is the full table of legal status moves.
// Terminal statuses have no outgoing edges.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPendingOrder:   {StatusCompletedOrder, StatusCancelledOrder},
	StatusCompletedOrder: {},
	StatusCancelledOrder: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]

	return ok
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}

	return false
}

func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

func (id OrderID) Valid() bool {
	_, err := uuid.Parse(string(id))

	return err == nil
}

func NewOrderID() OrderID {
	return OrderID(uuid.NewString())
}

type Orders []Order

type Order struct {
	ID          OrderID
	AccountID   AccountID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderFilter narrows order listings. Zero-valued fields are ignored.
type OrderFilter struct {
	AccountID   AccountID
	Status      OrderStatus
	CreatedFrom time.Time
	CreatedTo   time.Time
}

// AccountStatistics aggregates order counters for one account.
// TotalSpent sums total_amount over completed orders only.
type AccountStatistics struct {
	AccountID      AccountID
	TotalOrders    int
	PendingCount   int
	CompletedCount int
	CancelledCount int
	TotalSpent     decimal.Decimal
}
