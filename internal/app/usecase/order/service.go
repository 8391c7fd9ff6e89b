package order

import (
	"context"
	"fmt"
	"time"

	"github.com/avorobyev/go-order-service/internal/app/entity"
	"github.com/avorobyev/go-order-service/internal/app/notifier"
	"github.com/avorobyev/go-order-service/internal/app/storage/api/model"
	usecase "github.com/avorobyev/go-order-service/internal/app/usecase/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	maxOrderQuantity   = 1000
	maxProductNameLen  = 200
	maxUnitPriceDigits = 2
)

// minOrderValue is the smallest total an order may have.
var minOrderValue = decimal.New(100, -2)

type OrderStorage interface {
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	UpdateOrder(ctx context.Context, id entity.OrderID, apply model.ApplyOrderFunc) (entity.Order, error)
	DeleteOrder(ctx context.Context, id entity.OrderID, guard model.GuardOrderFunc) error
}

type Notifier interface {
	Publish(event notifier.Event)
}

type CreateOrderParams struct {
	AccountID   entity.AccountID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// UpdateOrderParams carries a partial update. Nil fields are left as is.
type UpdateOrderParams struct {
	ProductName *string
	Quantity    *int
	UnitPrice   *decimal.Decimal
}

// Service is the write path for orders. Every operation runs inside one
// storage transaction; business rules are checked before anything is
// written, so a failed call leaves the stored state untouched.
type Service struct {
	storage  OrderStorage
	notifier Notifier
}

func NewService(storage OrderStorage, notifier Notifier) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
	}
}

// Create validates the input, derives the total amount and persists a new
// pending order. The owning account must exist and be active, which the
// storage verifies inside the creating transaction.
func (s *Service) Create(ctx context.Context, params CreateOrderParams) (entity.Order, error) {
	if err := validateProductName(params.ProductName); err != nil {
		return entity.Order{}, err
	}
	if err := validateQuantity(params.Quantity); err != nil {
		return entity.Order{}, err
	}

	total, err := computeTotal(params.Quantity, params.UnitPrice)
	if err != nil {
		return entity.Order{}, err
	}

	order := entity.Order{
		ID:          entity.NewOrderID(),
		AccountID:   params.AccountID,
		ProductName: params.ProductName,
		Quantity:    params.Quantity,
		UnitPrice:   params.UnitPrice,
		TotalAmount: total,
		Status:      entity.StatusPendingOrder,
	}

	stored, err := s.storage.CreateOrder(ctx, order)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while creating order: %w", err)
	}

	zap.L().Info(
		"order created",
		zap.String("order_id", stored.ID.String()),
		zap.String("account_id", stored.AccountID.String()),
		zap.String("total_amount", stored.TotalAmount.String()),
	)

	s.publish(notifier.EventOrderCreated, stored)

	return stored, nil
}

// Update applies a partial update to a pending order and recomputes the
// total. Orders in a terminal status are rejected before any write.
func (s *Service) Update(ctx context.Context, id entity.OrderID, params UpdateOrderParams) (entity.Order, error) {
	updated, err := s.storage.UpdateOrder(ctx, id, func(order entity.Order) (entity.Order, error) {
		if order.Status != entity.StatusPendingOrder {
			return entity.Order{}, &usecase.StateTransitionError{Current: order.Status, Op: "update"}
		}

		if params.ProductName != nil {
			if err := validateProductName(*params.ProductName); err != nil {
				return entity.Order{}, err
			}
			order.ProductName = *params.ProductName
		}

		if params.Quantity != nil {
			if err := validateQuantity(*params.Quantity); err != nil {
				return entity.Order{}, err
			}
			order.Quantity = *params.Quantity
		}

		if params.UnitPrice != nil {
			order.UnitPrice = *params.UnitPrice
		}

		total, err := computeTotal(order.Quantity, order.UnitPrice)
		if err != nil {
			return entity.Order{}, err
		}
		order.TotalAmount = total

		return order, nil
	})
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while updating order: %w", err)
	}

	zap.L().Info("order updated", zap.String("order_id", updated.ID.String()))

	return updated, nil
}

func (s *Service) Complete(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	return s.transition(ctx, id, entity.StatusCompletedOrder, notifier.EventOrderCompleted)
}

func (s *Service) Cancel(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	return s.transition(ctx, id, entity.StatusCancelledOrder, notifier.EventOrderCancelled)
}

// transition moves the order to target if the transition table allows it.
// The status check runs on the row read under the storage lock, so of two
// concurrent transitions exactly one commits and the other observes the
// committed terminal status.
func (s *Service) transition(ctx context.Context, id entity.OrderID, target entity.OrderStatus, event notifier.EventName) (entity.Order, error) {
	updated, err := s.storage.UpdateOrder(ctx, id, func(order entity.Order) (entity.Order, error) {
		if !order.Status.CanTransitionTo(target) {
			return entity.Order{}, &usecase.StateTransitionError{Current: order.Status, Op: string(target)}
		}

		order.Status = target

		return order, nil
	})
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while transitioning order to %s: %w", target, err)
	}

	zap.L().Info(
		"order status changed",
		zap.String("order_id", updated.ID.String()),
		zap.String("status", string(updated.Status)),
	)

	s.publish(event, updated)

	return updated, nil
}

// Delete removes a pending or cancelled order. Completed orders cannot
// be deleted.
func (s *Service) Delete(ctx context.Context, id entity.OrderID) error {
	err := s.storage.DeleteOrder(ctx, id, func(order entity.Order) error {
		if order.Status == entity.StatusCompletedOrder {
			return &usecase.StateTransitionError{Current: order.Status, Op: "delete"}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("error while deleting order: %w", err)
	}

	zap.L().Info("order deleted", zap.String("order_id", id.String()))

	return nil
}

func (s *Service) publish(event notifier.EventName, order entity.Order) {
	s.notifier.Publish(notifier.Event{
		Name:        event,
		OrderID:     order.ID.String(),
		AccountID:   order.AccountID.String(),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		OccurredAt:  time.Now().UTC(),
	})
}

func validateProductName(name string) error {
	if len(name) == 0 {
		return usecase.NewValidationError(usecase.RuleProductName, "product name must not be empty")
	}
	if len(name) > maxProductNameLen {
		return usecase.NewValidationError(usecase.RuleProductName, "product name must not exceed %d characters", maxProductNameLen)
	}

	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 || quantity > maxOrderQuantity {
		return usecase.NewValidationError(usecase.RuleQuantityRange, "quantity must be between 1 and %d units per order", maxOrderQuantity)
	}

	return nil
}

// computeTotal derives quantity * unit price in exact decimal arithmetic
// and checks the minimum order value.
func computeTotal(quantity int, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if unitPrice.IsNegative() {
		return decimal.Decimal{}, usecase.NewValidationError(usecase.RuleUnitPrice, "unit price must not be negative")
	}
	if unitPrice.Exponent() < -maxUnitPriceDigits {
		return decimal.Decimal{}, usecase.NewValidationError(usecase.RuleUnitPrice, "unit price must have at most %d decimal places", maxUnitPriceDigits)
	}

	total := decimal.NewFromInt(int64(quantity)).Mul(unitPrice)
	if total.LessThan(minOrderValue) {
		return decimal.Decimal{}, usecase.NewValidationError(usecase.RuleMinOrderValue, "order total must be at least %s", minOrderValue.StringFixed(2))
	}

	return total, nil
}
