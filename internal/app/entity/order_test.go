package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		isOpen bool
	}{
		{
			name:   "pending to completed",
			from:   StatusPendingOrder,
			to:     StatusCompletedOrder,
			isOpen: true,
		},
		{
			name:   "pending to cancelled",
			from:   StatusPendingOrder,
			to:     StatusCancelledOrder,
			isOpen: true,
		},
		{
			name: "pending to pending",
			from: StatusPendingOrder,
			to:   StatusPendingOrder,
		},
		{
			name: "completed to cancelled",
			from: StatusCompletedOrder,
			to:   StatusCancelledOrder,
		},
		{
			name: "completed to pending",
			from: StatusCompletedOrder,
			to:   StatusPendingOrder,
		},
		{
			name: "cancelled to completed",
			from: StatusCancelledOrder,
			to:   StatusCompletedOrder,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.isOpen, test.from.CanTransitionTo(test.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, StatusPendingOrder.Terminal())
	assert.True(t, StatusCompletedOrder.Terminal())
	assert.True(t, StatusCancelledOrder.Terminal())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, StatusPendingOrder.Valid())
	assert.True(t, StatusCompletedOrder.Valid())
	assert.True(t, StatusCancelledOrder.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestIDValidation(t *testing.T) {
	assert.True(t, NewOrderID().Valid())
	assert.True(t, NewAccountID().Valid())
	assert.False(t, OrderID("42").Valid())
	assert.False(t, AccountID("").Valid())
}
