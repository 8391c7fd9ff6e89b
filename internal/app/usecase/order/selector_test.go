package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avorobyev/go-order-service/internal/app/entity"
	err_storage "github.com/avorobyev/go-order-service/internal/app/storage/api/errors"
	"github.com/avorobyev/go-order-service/internal/app/usecase/order/mock"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := entity.Order{
		ID:     entity.NewOrderID(),
		Status: entity.StatusPendingOrder,
	}

	tests := []struct {
		name       string
		storageErr error
	}{
		{
			name: "order found",
		},
		{
			name:       "order not found",
			storageErr: err_storage.ErrOrderNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := mock.NewMockOrderReader(ctrl)
			s.EXPECT().GetOrder(gomock.Any(), stored.ID).Return(stored, test.storageErr)

			selector := NewSelector(s)
			order, err := selector.GetByID(context.Background(), stored.ID)

			if test.storageErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, err_storage.ErrOrderNotFound))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, order.ID)
		})
	}
}

func TestSelectorListByAccountBuildsFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := entity.NewAccountID()
	stored := entity.Orders{
		{ID: entity.NewOrderID(), AccountID: accountID},
		{ID: entity.NewOrderID(), AccountID: accountID},
	}

	s := mock.NewMockOrderReader(ctrl)
	s.EXPECT().
		ListOrders(gomock.Any(), entity.OrderFilter{AccountID: accountID}).
		Return(stored, nil)

	selector := NewSelector(s)
	orders, err := selector.ListByAccount(context.Background(), accountID)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestSelectorListPassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := entity.OrderFilter{
		AccountID:   entity.NewAccountID(),
		Status:      entity.StatusCompletedOrder,
		CreatedFrom: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedTo:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
	}

	s := mock.NewMockOrderReader(ctrl)
	s.EXPECT().ListOrders(gomock.Any(), filter).Return(entity.Orders{}, nil)

	selector := NewSelector(s)
	orders, err := selector.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSelectorStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := entity.NewAccountID()
	stats := entity.AccountStatistics{
		AccountID:      accountID,
		TotalOrders:    4,
		PendingCount:   2,
		CompletedCount: 1,
		CancelledCount: 1,
		TotalSpent:     decimal.RequireFromString("50.00"),
	}

	s := mock.NewMockOrderReader(ctrl)
	s.EXPECT().AccountStatistics(gomock.Any(), accountID).Return(stats, nil)

	selector := NewSelector(s)
	got, err := selector.Statistics(context.Background(), accountID)

	require.NoError(t, err)
	assert.Equal(t, 4, got.TotalOrders)
	assert.Equal(t, 2, got.PendingCount)
	assert.Equal(t, 1, got.CompletedCount)
	assert.Equal(t, 1, got.CancelledCount)
	assert.Equal(t, "50.00", got.TotalSpent.StringFixed(2))
}
