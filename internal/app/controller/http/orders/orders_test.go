package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avorobyev/go-order-service/internal/app/controller/http/orders/mock"
	"github.com/avorobyev/go-order-service/internal/app/entity"
	err_storage "github.com/avorobyev/go-order-service/internal/app/storage/api/errors"
	usecase "github.com/avorobyev/go-order-service/internal/app/usecase/errors"
	"github.com/avorobyev/go-order-service/internal/app/usecase/order"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccountID = "00308dff-b6b1-4f1b-8515-d09d3db49951"
	testOrderID   = "1d80225e-3ee2-43c0-9b7c-8a7a57cbb625"
)

func newTestRouter(service OrderProcessor, selector OrderFetcher) *chi.Mux {
	handler := New(service, selector)

	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder())
	r.Get("/api/orders", handler.ListOrders())
	r.Get("/api/orders/{orderID}", handler.GetOrder())
	r.Patch("/api/orders/{orderID}", handler.UpdateOrder())
	r.Delete("/api/orders/{orderID}", handler.DeleteOrder())
	r.Post("/api/orders/{orderID}/complete", handler.CompleteOrder())
	r.Post("/api/orders/{orderID}/cancel", handler.CancelOrder())
	r.Get("/api/accounts/{accountID}/orders", handler.ListAccountOrders())
	r.Get("/api/accounts/{accountID}/statistics", handler.AccountStatistics())

	return r
}

func testOrder() entity.Order {
	return entity.Order{
		ID:          entity.OrderID(testOrderID),
		AccountID:   entity.AccountID(testAccountID),
		ProductName: "mechanical keyboard",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("19.99"),
		TotalAmount: decimal.RequireFromString("39.98"),
		Status:      entity.StatusPendingOrder,
	}
}

func TestCreateOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inputCorrect := `{
		"account_id": "` + testAccountID + `",
		"product_name": "mechanical keyboard",
		"quantity": 2,
		"unit_price": "19.99"
	}`

	tests := []struct {
		name       string
		body       string
		isCreated  bool
		createErr  error
		wantStatus int
	}{
		{
			name:       "correct input data",
			body:       inputCorrect,
			isCreated:  true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `<invalid json>`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "quantity above maximum",
			body:       strings.Replace(inputCorrect, `"quantity": 2`, `"quantity": 1001`, 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "business validation failed",
			body:       inputCorrect,
			isCreated:  true,
			createErr:  usecase.NewValidationError(usecase.RuleMinOrderValue, "order total must be at least 1.00"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "account missing or inactive",
			body:       inputCorrect,
			isCreated:  true,
			createErr:  err_storage.ErrAccountInactive,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "storage error",
			body:       inputCorrect,
			isCreated:  true,
			createErr:  errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockOrderProcessor(ctrl)
			selector := mock.NewMockOrderFetcher(ctrl)

			if test.isCreated {
				service.EXPECT().
					Create(gomock.Any(), order.CreateOrderParams{
						AccountID:   entity.AccountID(testAccountID),
						ProductName: "mechanical keyboard",
						Quantity:    2,
						UnitPrice:   decimal.RequireFromString("19.99"),
					}).
					Return(testOrder(), test.createErr)
			} else {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			}

			request := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			newTestRouter(service, selector).ServeHTTP(writer, request)

			res := writer.Result()
			assert.Equal(t, test.wantStatus, res.StatusCode)
			require.NoError(t, res.Body.Close())
		})
	}
}

func TestCreateOrderHandlerResponseBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock.NewMockOrderProcessor(ctrl)
	selector := mock.NewMockOrderFetcher(ctrl)
	service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(testOrder(), nil)

	body := `{
		"account_id": "` + testAccountID + `",
		"product_name": "mechanical keyboard",
		"quantity": 2,
		"unit_price": "19.99"
	}`
	request := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	writer := httptest.NewRecorder()

	newTestRouter(service, selector).ServeHTTP(writer, request)

	res := writer.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var response map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, testOrderID, response["id"])
	assert.Equal(t, "39.98", response["total_amount"])
	assert.Equal(t, "pending", response["status"])
}

func TestTransitionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		path       string
		orderID    string
		expect     func(service *mock.MockOrderProcessor)
		wantStatus int
	}{
		{
			name:    "complete pending order",
			path:    "/api/orders/" + testOrderID + "/complete",
			orderID: testOrderID,
			expect: func(service *mock.MockOrderProcessor) {
				completed := testOrder()
				completed.Status = entity.StatusCompletedOrder
				service.EXPECT().Complete(gomock.Any(), entity.OrderID(testOrderID)).Return(completed, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "cancel pending order",
			path:    "/api/orders/" + testOrderID + "/cancel",
			orderID: testOrderID,
			expect: func(service *mock.MockOrderProcessor) {
				cancelled := testOrder()
				cancelled.Status = entity.StatusCancelledOrder
				service.EXPECT().Cancel(gomock.Any(), entity.OrderID(testOrderID)).Return(cancelled, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "complete already terminal order",
			path:    "/api/orders/" + testOrderID + "/complete",
			orderID: testOrderID,
			expect: func(service *mock.MockOrderProcessor) {
				service.EXPECT().
					Complete(gomock.Any(), entity.OrderID(testOrderID)).
					Return(entity.Order{}, &usecase.StateTransitionError{Current: entity.StatusCompletedOrder, Op: "completed"})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:    "complete missing order",
			path:    "/api/orders/" + testOrderID + "/complete",
			orderID: testOrderID,
			expect: func(service *mock.MockOrderProcessor) {
				service.EXPECT().
					Complete(gomock.Any(), entity.OrderID(testOrderID)).
					Return(entity.Order{}, err_storage.ErrOrderNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid order id",
			path:       "/api/orders/42/complete",
			expect:     func(service *mock.MockOrderProcessor) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockOrderProcessor(ctrl)
			selector := mock.NewMockOrderFetcher(ctrl)
			test.expect(service)

			request := httptest.NewRequest(http.MethodPost, test.path, nil)
			writer := httptest.NewRecorder()

			newTestRouter(service, selector).ServeHTTP(writer, request)

			res := writer.Result()
			assert.Equal(t, test.wantStatus, res.StatusCode)
			require.NoError(t, res.Body.Close())
		})
	}
}

func TestDeleteOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{
			name:       "delete pending order",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "delete completed order",
			deleteErr:  &usecase.StateTransitionError{Current: entity.StatusCompletedOrder, Op: "delete"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "delete missing order",
			deleteErr:  err_storage.ErrOrderNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockOrderProcessor(ctrl)
			selector := mock.NewMockOrderFetcher(ctrl)
			service.EXPECT().Delete(gomock.Any(), entity.OrderID(testOrderID)).Return(test.deleteErr)

			request := httptest.NewRequest(http.MethodDelete, "/api/orders/"+testOrderID, nil)
			writer := httptest.NewRecorder()

			newTestRouter(service, selector).ServeHTTP(writer, request)

			res := writer.Result()
			assert.Equal(t, test.wantStatus, res.StatusCode)
			require.NoError(t, res.Body.Close())
		})
	}
}

func TestListOrdersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		query      string
		expect     func(selector *mock.MockOrderFetcher)
		wantStatus int
	}{
		{
			name:  "no filters",
			query: "",
			expect: func(selector *mock.MockOrderFetcher) {
				selector.EXPECT().
					List(gomock.Any(), entity.OrderFilter{}).
					Return(entity.Orders{testOrder()}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "account and status filter",
			query: "?account_id=" + testAccountID + "&status=completed",
			expect: func(selector *mock.MockOrderFetcher) {
				selector.EXPECT().
					List(gomock.Any(), entity.OrderFilter{
						AccountID: entity.AccountID(testAccountID),
						Status:    entity.StatusCompletedOrder,
					}).
					Return(entity.Orders{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown status",
			query:      "?status=shipped",
			expect:     func(selector *mock.MockOrderFetcher) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed date range",
			query:      "?from=yesterday",
			expect:     func(selector *mock.MockOrderFetcher) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockOrderProcessor(ctrl)
			selector := mock.NewMockOrderFetcher(ctrl)
			test.expect(selector)

			request := httptest.NewRequest(http.MethodGet, "/api/orders"+test.query, nil)
			writer := httptest.NewRecorder()

			newTestRouter(service, selector).ServeHTTP(writer, request)

			res := writer.Result()
			assert.Equal(t, test.wantStatus, res.StatusCode)
			require.NoError(t, res.Body.Close())
		})
	}
}

func TestAccountStatisticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock.NewMockOrderProcessor(ctrl)
	selector := mock.NewMockOrderFetcher(ctrl)

	selector.EXPECT().
		Statistics(gomock.Any(), entity.AccountID(testAccountID)).
		Return(entity.AccountStatistics{
			AccountID:      entity.AccountID(testAccountID),
			TotalOrders:    4,
			PendingCount:   2,
			CompletedCount: 1,
			CancelledCount: 1,
			TotalSpent:     decimal.RequireFromString("50.00"),
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/accounts/"+testAccountID+"/statistics", nil)
	writer := httptest.NewRecorder()

	newTestRouter(service, selector).ServeHTTP(writer, request)

	res := writer.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, float64(4), response["total_orders"])
	assert.Equal(t, float64(2), response["pending_count"])
	assert.Equal(t, float64(1), response["completed_count"])
	assert.Equal(t, float64(1), response["cancelled_count"])
	assert.Equal(t, "50.00", response["total_spent"])
}

func TestGetOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		getErr     error
		wantStatus int
	}{
		{
			name:       "order found",
			wantStatus: http.StatusOK,
		},
		{
			name:       "order not found",
			getErr:     err_storage.ErrOrderNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockOrderProcessor(ctrl)
			selector := mock.NewMockOrderFetcher(ctrl)
			selector.EXPECT().GetByID(gomock.Any(), entity.OrderID(testOrderID)).Return(testOrder(), test.getErr)

			request := httptest.NewRequest(http.MethodGet, "/api/orders/"+testOrderID, nil)
			writer := httptest.NewRecorder()

			newTestRouter(service, selector).ServeHTTP(writer, request)

			res := writer.Result()
			assert.Equal(t, test.wantStatus, res.StatusCode)
			require.NoError(t, res.Body.Close())
		})
	}
}
