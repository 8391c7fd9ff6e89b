package orders

import (
	"context"
	"errors"
	"net/http"
	"time"

	httputils "github.com/avorobyev/go-order-service/internal/app/controller/http/utils"
	"github.com/avorobyev/go-order-service/internal/app/converter"
	"github.com/avorobyev/go-order-service/internal/app/entity"
	"github.com/avorobyev/go-order-service/internal/app/model"
	err_storage "github.com/avorobyev/go-order-service/internal/app/storage/api/errors"
	usecase "github.com/avorobyev/go-order-service/internal/app/usecase/errors"
	"github.com/avorobyev/go-order-service/internal/app/usecase/order"
	"github.com/avorobyev/go-order-service/internal/app/validator"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	ErrInvalidOrderID   = "invalid order id"
	ErrInvalidAccountID = "invalid account id"
	ErrInvalidFilter    = "invalid list filter"
)

type OrderProcessor interface {
	Create(ctx context.Context, params order.CreateOrderParams) (entity.Order, error)
	Update(ctx context.Context, id entity.OrderID, params order.UpdateOrderParams) (entity.Order, error)
	Complete(ctx context.Context, id entity.OrderID) (entity.Order, error)
	Cancel(ctx context.Context, id entity.OrderID) (entity.Order, error)
	Delete(ctx context.Context, id entity.OrderID) error
}

type OrderFetcher interface {
	GetByID(ctx context.Context, id entity.OrderID) (entity.Order, error)
	List(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error)
	ListByAccount(ctx context.Context, accountID entity.AccountID) (entity.Orders, error)
	Statistics(ctx context.Context, accountID entity.AccountID) (entity.AccountStatistics, error)
}

type Handler struct {
	service  OrderProcessor
	selector OrderFetcher
}

func New(service OrderProcessor, selector OrderFetcher) Handler {
	return Handler{
		service:  service,
		selector: selector,
	}
}

func (h *Handler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CreateOrderRequest
		if err := validator.DecodeAndValidate(r.Body, &request); err != nil {
			zap.L().Error("error while parsing create order request", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		created, err := h.service.Create(ctx, order.CreateOrderParams{
			AccountID:   entity.AccountID(request.AccountID),
			ProductName: request.ProductName,
			Quantity:    request.Quantity,
			UnitPrice:   request.UnitPrice,
		})
		if err != nil {
			writeOrderError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertOrderToResponse(created))
	}
}

func (h *Handler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidOrderID})
			return
		}

		var request model.UpdateOrderRequest
		if err := validator.DecodeAndValidate(r.Body, &request); err != nil {
			zap.L().Error("error while parsing update order request", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		updated, err := h.service.Update(ctx, orderID, order.UpdateOrderParams{
			ProductName: request.ProductName,
			Quantity:    request.Quantity,
			UnitPrice:   request.UnitPrice,
		})
		if err != nil {
			writeOrderError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(updated))
	}
}

func (h *Handler) CompleteOrder() http.HandlerFunc {
	return h.transitionHandler(func(ctx context.Context, id entity.OrderID) (entity.Order, error) {
		return h.service.Complete(ctx, id)
	})
}

func (h *Handler) CancelOrder() http.HandlerFunc {
	return h.transitionHandler(func(ctx context.Context, id entity.OrderID) (entity.Order, error) {
		return h.service.Cancel(ctx, id)
	})
}

func (h *Handler) transitionHandler(transition func(ctx context.Context, id entity.OrderID) (entity.Order, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidOrderID})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		updated, err := transition(ctx, orderID)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(updated))
	}
}

func (h *Handler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidOrderID})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		if err := h.service.Delete(ctx, orderID); err != nil {
			writeOrderError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidOrderID})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		found, err := h.selector.GetByID(ctx, orderID)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(found))
	}
}

func (h *Handler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			zap.L().Error("error while parsing order list filter", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidFilter})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := h.selector.List(ctx, filter)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToResponse(orders))
	}
}

func (h *Handler) ListAccountOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := parseAccountID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidAccountID})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := h.selector.ListByAccount(ctx, accountID)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToResponse(orders))
	}
}

func (h *Handler) AccountStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := parseAccountID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidAccountID})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		stats, err := h.selector.Statistics(ctx, accountID)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertStatisticsToResponse(stats))
	}
}

// writeOrderError maps service errors to HTTP statuses.
func writeOrderError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: validationErr.Message,
			Rule:  validationErr.Rule,
		})
		return
	}

	var transitionErr *usecase.StateTransitionError
	if errors.As(err, &transitionErr) {
		httputils.WriteJSON(w, http.StatusConflict, model.ErrorResponse{Error: transitionErr.Error()})
		return
	}

	switch {
	case errors.Is(err, err_storage.ErrOrderNotFound):
		httputils.WriteJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "order not found"})
	case errors.Is(err, err_storage.ErrAccountNotFound), errors.Is(err, err_storage.ErrAccountInactive):
		httputils.WriteJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{Error: "account is missing or not active"})
	default:
		zap.L().Error("error while processing order request", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func parseOrderID(r *http.Request) (entity.OrderID, error) {
	orderID := entity.OrderID(chi.URLParam(r, "orderID"))
	if !orderID.Valid() {
		return entity.OrderID(""), errors.New(ErrInvalidOrderID)
	}

	return orderID, nil
}

func parseAccountID(r *http.Request) (entity.AccountID, error) {
	accountID := entity.AccountID(chi.URLParam(r, "accountID"))
	if !accountID.Valid() {
		return entity.AccountID(""), errors.New(ErrInvalidAccountID)
	}

	return accountID, nil
}

func parseListFilter(r *http.Request) (entity.OrderFilter, error) {
	var filter entity.OrderFilter
	query := r.URL.Query()

	if rawAccountID := query.Get("account_id"); len(rawAccountID) != 0 {
		accountID := entity.AccountID(rawAccountID)
		if !accountID.Valid() {
			return entity.OrderFilter{}, errors.New(ErrInvalidAccountID)
		}
		filter.AccountID = accountID
	}

	if rawStatus := query.Get("status"); len(rawStatus) != 0 {
		status := entity.OrderStatus(rawStatus)
		if !status.Valid() {
			return entity.OrderFilter{}, errors.New("invalid order status")
		}
		filter.Status = status
	}

	if rawFrom := query.Get("from"); len(rawFrom) != 0 {
		from, err := time.Parse(time.RFC3339, rawFrom)
		if err != nil {
			return entity.OrderFilter{}, err
		}
		filter.CreatedFrom = from
	}

	if rawTo := query.Get("to"); len(rawTo) != 0 {
		to, err := time.Parse(time.RFC3339, rawTo)
		if err != nil {
			return entity.OrderFilter{}, err
		}
		filter.CreatedTo = to
	}

	return filter, nil
}
