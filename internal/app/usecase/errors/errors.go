package usecase

import (
	"fmt"

	"github.com/avorobyev/go-order-service/internal/app/entity"
)

// Business rule identifiers carried by ValidationError.
const (
	RuleQuantityRange = "quantity_range"
	RuleUnitPrice     = "unit_price"
	RuleMinOrderValue = "min_order_value"
	RuleProductName   = "product_name"
)

// ValidationError reports an input that violates a business rule.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(rule string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	}
}

// StateTransitionError reports a mutation attempted on an order
// whose current status forbids it.
type StateTransitionError struct {
	Current entity.OrderStatus
	Op      string
}

func (e *StateTransitionError) Error() string {
	if e.Current.Terminal() {
		return fmt.Sprintf("cannot %s order in terminal status %q: order is immutable", e.Op, e.Current)
	}

	return fmt.Sprintf("cannot %s order in status %q", e.Op, e.Current)
}
