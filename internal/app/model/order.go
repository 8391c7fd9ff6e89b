package model

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	AccountID   string          `json:"account_id" validate:"required,uuid"`
	ProductName string          `json:"product_name" validate:"required,max=200"`
	Quantity    int             `json:"quantity" validate:"required,min=1,max=1000"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateOrderRequest is a partial update, absent fields stay unchanged.
type UpdateOrderRequest struct {
	ProductName *string          `json:"product_name" validate:"omitempty,max=200"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=1,max=1000"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

type OrderResponses []OrderResponse

type OrderResponse struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalAmount string `json:"total_amount"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type StatisticsResponse struct {
	AccountID      string `json:"account_id"`
	TotalOrders    int    `json:"total_orders"`
	PendingCount   int    `json:"pending_count"`
	CompletedCount int    `json:"completed_count"`
	CancelledCount int    `json:"cancelled_count"`
	TotalSpent     string `json:"total_spent"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Rule  string `json:"rule,omitempty"`
}
