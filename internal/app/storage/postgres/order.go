package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avorobyev/go-order-service/internal/app/entity"
	err_storage "github.com/avorobyev/go-order-service/internal/app/storage/api/errors"
	"github.com/avorobyev/go-order-service/internal/app/storage/api/model"
)

const (
	orderColumns = `id, account_id, product_name, quantity, unit_price, total_amount, status, created_at, updated_at`

	lockAccountQuery = `
		SELECT is_active
		FROM accounts
		WHERE id = $1
		FOR SHARE`

	insertOrderQuery = `
		INSERT INTO orders (id, account_id, product_name, quantity, unit_price, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	getOrderQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	lockOrderQuery = getOrderQuery + `
		FOR UPDATE`

	saveOrderQuery = `
		UPDATE orders
		SET product_name = $2, quantity = $3, unit_price = $4, total_amount = $5, status = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	deleteOrderQuery = `
		DELETE FROM orders
		WHERE id = $1`

	accountStatisticsQuery = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'completed'), 0)
		FROM orders
		WHERE account_id = $1`
)

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateOrder inserts an order after verifying, inside the same transaction,
// that the owning account exists and is active. The account row is locked
// for the duration so that a concurrent deactivation cannot slip in between
// the check and the insert.
func (s *Postgres) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	err := s.inTransaction(ctx, func(tx *sql.Tx) error {
		var isActive bool
		err := tx.QueryRowContext(ctx, lockAccountQuery, order.AccountID.String()).Scan(&isActive)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return err_storage.ErrAccountNotFound
			}

			return fmt.Errorf("error while locking account row: %w", err)
		}

		if !isActive {
			return err_storage.ErrAccountInactive
		}

		row := tx.QueryRowContext(
			ctx,
			insertOrderQuery,
			order.ID.String(),
			order.AccountID.String(),
			order.ProductName,
			order.Quantity,
			order.UnitPrice,
			order.TotalAmount,
			string(order.Status),
		)
		if err := row.Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
			return fmt.Errorf("error while inserting order: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

// UpdateOrder reads the order under a row lock, lets apply rework it and
// writes the result back. Apply errors roll the transaction back, so two
// concurrent writers serialize on the lock and the second one sees the
// status the first one committed.
func (s *Postgres) UpdateOrder(ctx context.Context, id entity.OrderID, apply model.ApplyOrderFunc) (entity.Order, error) {
	var updated entity.Order

	err := s.inTransaction(ctx, func(tx *sql.Tx) error {
		order, err := s.scanOrder(tx.QueryRowContext(ctx, lockOrderQuery, id.String()))
		if err != nil {
			return err
		}

		updated, err = apply(order)
		if err != nil {
			return err
		}

		row := tx.QueryRowContext(
			ctx,
			saveOrderQuery,
			updated.ID.String(),
			updated.ProductName,
			updated.Quantity,
			updated.UnitPrice,
			updated.TotalAmount,
			string(updated.Status),
		)
		if err := row.Scan(&updated.UpdatedAt); err != nil {
			return fmt.Errorf("error while saving order: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}

	return updated, nil
}

// DeleteOrder removes the order once guard approves the locked row.
func (s *Postgres) DeleteOrder(ctx context.Context, id entity.OrderID, guard model.GuardOrderFunc) error {
	return s.inTransaction(ctx, func(tx *sql.Tx) error {
		order, err := s.scanOrder(tx.QueryRowContext(ctx, lockOrderQuery, id.String()))
		if err != nil {
			return err
		}

		if err := guard(order); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteOrderQuery, id.String()); err != nil {
			return fmt.Errorf("error while deleting order: %w", err)
		}

		return nil
	})
}

func (s *Postgres) GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	return s.scanOrder(s.db.QueryRowContext(ctx, getOrderQuery, id.String()))
}

func (s *Postgres) ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error) {
	query, args := buildListOrdersQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error while querying orders: %w", err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0)
	for rows.Next() {
		order, err := s.scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating orders: %w", err)
	}

	return orders, nil
}

func (s *Postgres) AccountStatistics(ctx context.Context, id entity.AccountID) (entity.AccountStatistics, error) {
	stats := entity.AccountStatistics{
		AccountID: id,
	}

	row := s.db.QueryRowContext(ctx, accountStatisticsQuery, id.String())
	err := row.Scan(
		&stats.TotalOrders,
		&stats.PendingCount,
		&stats.CompletedCount,
		&stats.CancelledCount,
		&stats.TotalSpent,
	)
	if err != nil {
		return entity.AccountStatistics{}, fmt.Errorf("error while querying account statistics: %w", err)
	}

	return stats, nil
}

// buildListOrdersQuery assembles the filtered listing query. The ordering
// is stable: newest first, ties broken by id.
func buildListOrdersQuery(filter entity.OrderFilter) (string, []any) {
	var conditions []string
	var args []any

	addCondition := func(column, op string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", column, op, len(args)))
	}

	if len(filter.AccountID) != 0 {
		addCondition("account_id", "=", filter.AccountID.String())
	}
	if len(filter.Status) != 0 {
		addCondition("status", "=", string(filter.Status))
	}
	if !filter.CreatedFrom.IsZero() {
		addCondition("created_at", ">=", filter.CreatedFrom)
	}
	if !filter.CreatedTo.IsZero() {
		addCondition("created_at", "<=", filter.CreatedTo)
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) != 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`

	return query, args
}

func (s *Postgres) scanOrder(row rowScanner) (entity.Order, error) {
	var order entity.Order
	var rawID, rawAccountID, rawStatus string

	err := row.Scan(
		&rawID,
		&rawAccountID,
		&order.ProductName,
		&order.Quantity,
		&order.UnitPrice,
		&order.TotalAmount,
		&rawStatus,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while scanning order: %w", err)
	}

	order.ID = entity.OrderID(rawID)
	order.AccountID = entity.AccountID(rawAccountID)
	order.Status = entity.OrderStatus(rawStatus)

	return order, nil
}
