package converter

import (
	"github.com/avorobyev/go-order-service/internal/app/entity"
	"github.com/avorobyev/go-order-service/internal/app/model"
	"github.com/golang-module/carbon/v2"
)

func ConvertOrderToResponse(order entity.Order) model.OrderResponse {
	return model.OrderResponse{
		ID:          order.ID.String(),
		AccountID:   order.AccountID.String(),
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		UnitPrice:   order.UnitPrice.StringFixed(2),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Status:      string(order.Status),
		CreatedAt:   carbon.CreateFromStdTime(order.CreatedAt).ToRfc3339String(),
		UpdatedAt:   carbon.CreateFromStdTime(order.UpdatedAt).ToRfc3339String(),
	}
}

func ConvertOrdersToResponse(orders entity.Orders) model.OrderResponses {
	responses := make(model.OrderResponses, 0, len(orders))

	for _, order := range orders {
		responses = append(responses, ConvertOrderToResponse(order))
	}

	return responses
}

func ConvertStatisticsToResponse(stats entity.AccountStatistics) model.StatisticsResponse {
	return model.StatisticsResponse{
		AccountID:      stats.AccountID.String(),
		TotalOrders:    stats.TotalOrders,
		PendingCount:   stats.PendingCount,
		CompletedCount: stats.CompletedCount,
		CancelledCount: stats.CancelledCount,
		TotalSpent:     stats.TotalSpent.StringFixed(2),
	}
}
