package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avorobyev/go-order-service/internal/app/entity"
	err_storage "github.com/avorobyev/go-order-service/internal/app/storage/api/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	createAccountQuery = `
		INSERT INTO accounts (id, email, password_hash, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	getAccountByIDQuery = `
		SELECT id, email, password_hash, full_name, is_active, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	getAccountByEmailQuery = `
		SELECT id, email, password_hash, full_name, is_active, created_at, updated_at
		FROM accounts
		WHERE email = $1`

	setAccountActiveQuery = `
		UPDATE accounts
		SET is_active = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, email, password_hash, full_name, is_active, created_at, updated_at`
)

func (s *Postgres) CreateAccount(ctx context.Context, account entity.Account) (entity.Account, error) {
	row := s.db.QueryRowContext(
		ctx,
		createAccountQuery,
		account.ID.String(),
		account.Email,
		account.PasswordHash,
		account.FullName,
		account.IsActive,
	)

	err := row.Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return entity.Account{}, err_storage.ErrEmailExists
		}

		return entity.Account{}, fmt.Errorf("error while inserting account: %w", err)
	}

	return account, nil
}

func (s *Postgres) GetAccountByID(ctx context.Context, id entity.AccountID) (entity.Account, error) {
	return s.scanAccount(s.db.QueryRowContext(ctx, getAccountByIDQuery, id.String()))
}

func (s *Postgres) GetAccountByEmail(ctx context.Context, email string) (entity.Account, error) {
	return s.scanAccount(s.db.QueryRowContext(ctx, getAccountByEmailQuery, email))
}

func (s *Postgres) SetAccountActive(ctx context.Context, id entity.AccountID, active bool) (entity.Account, error) {
	return s.scanAccount(s.db.QueryRowContext(ctx, setAccountActiveQuery, id.String(), active))
}

func (s *Postgres) scanAccount(row *sql.Row) (entity.Account, error) {
	var account entity.Account
	var rawID string

	err := row.Scan(
		&rawID,
		&account.Email,
		&account.PasswordHash,
		&account.FullName,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Account{}, err_storage.ErrAccountNotFound
		}

		return entity.Account{}, fmt.Errorf("error while scanning account: %w", err)
	}

	account.ID = entity.AccountID(rawID)

	return account, nil
}
