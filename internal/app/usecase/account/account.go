package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/avorobyev/go-order-service/internal/app/entity"
	err_storage "github.com/avorobyev/go-order-service/internal/app/storage/api/errors"
	"github.com/avorobyev/go-order-service/internal/app/usecase/crypto"
	"go.uber.org/zap"
)

type AccountStorage interface {
	CreateAccount(ctx context.Context, account entity.Account) (entity.Account, error)
	GetAccountByID(ctx context.Context, id entity.AccountID) (entity.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (entity.Account, error)
	SetAccountActive(ctx context.Context, id entity.AccountID, active bool) (entity.Account, error)
}

type CreateAccountParams struct {
	Email    string
	Password string
	FullName string
}

type Service struct {
	storage AccountStorage
}

func New(storage AccountStorage) *Service {
	return &Service{
		storage: storage,
	}
}

// Create registers a new active account. Email matching is exact and
// case-sensitive; the unique index on email guarantees uniqueness.
func (s *Service) Create(ctx context.Context, params CreateAccountParams) (entity.Account, error) {
	_, err := s.storage.GetAccountByEmail(ctx, params.Email)
	if err == nil {
		return entity.Account{}, err_storage.ErrEmailExists
	}
	if !errors.Is(err, err_storage.ErrAccountNotFound) {
		return entity.Account{}, fmt.Errorf("error while checking email uniqueness: %w", err)
	}

	passwordHash, err := crypto.HashPassword(params.Password)
	if err != nil {
		return entity.Account{}, fmt.Errorf("error while hashing account password: %w", err)
	}

	account := entity.Account{
		ID:           entity.NewAccountID(),
		Email:        params.Email,
		PasswordHash: passwordHash,
		FullName:     params.FullName,
		IsActive:     true,
	}

	stored, err := s.storage.CreateAccount(ctx, account)
	if err != nil {
		return entity.Account{}, fmt.Errorf("error while creating account: %w", err)
	}

	zap.L().Info("account created", zap.String("account_id", stored.ID.String()))

	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id entity.AccountID) (entity.Account, error) {
	account, err := s.storage.GetAccountByID(ctx, id)
	if err != nil {
		return entity.Account{}, fmt.Errorf("error while getting account by id: %w", err)
	}

	return account, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (entity.Account, error) {
	account, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		return entity.Account{}, fmt.Errorf("error while getting account by email: %w", err)
	}

	return account, nil
}

func (s *Service) SetActive(ctx context.Context, id entity.AccountID, active bool) (entity.Account, error) {
	account, err := s.storage.SetAccountActive(ctx, id, active)
	if err != nil {
		return entity.Account{}, fmt.Errorf("error while updating account status: %w", err)
	}

	zap.L().Info(
		"account status updated",
		zap.String("account_id", account.ID.String()),
		zap.Bool("is_active", account.IsActive),
	)

	return account, nil
}
