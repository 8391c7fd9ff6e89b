package accounts

import (
	"context"
	"errors"
	"net/http"

	httputils "github.com/avorobyev/go-order-service/internal/app/controller/http/utils"
	"github.com/avorobyev/go-order-service/internal/app/converter"
	"github.com/avorobyev/go-order-service/internal/app/entity"
	"github.com/avorobyev/go-order-service/internal/app/model"
	err_storage "github.com/avorobyev/go-order-service/internal/app/storage/api/errors"
	"github.com/avorobyev/go-order-service/internal/app/usecase/account"
	"github.com/avorobyev/go-order-service/internal/app/validator"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	ErrInvalidAccountID = "invalid account id"
)

type AccountProcessor interface {
	Create(ctx context.Context, params account.CreateAccountParams) (entity.Account, error)
	GetByID(ctx context.Context, id entity.AccountID) (entity.Account, error)
	SetActive(ctx context.Context, id entity.AccountID, active bool) (entity.Account, error)
}

type Handler struct {
	accounts AccountProcessor
}

func New(accounts AccountProcessor) Handler {
	return Handler{
		accounts: accounts,
	}
}

func (h *Handler) CreateAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CreateAccountRequest
		if err := validator.DecodeAndValidate(r.Body, &request); err != nil {
			zap.L().Error("error while parsing create account request", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		created, err := h.accounts.Create(ctx, account.CreateAccountParams{
			Email:    request.Email,
			Password: request.Password,
			FullName: request.FullName,
		})
		if err != nil {
			if errors.Is(err, err_storage.ErrEmailExists) {
				zap.L().Info("email already registered", zap.String("email", request.Email))
				httputils.WriteJSON(w, http.StatusConflict, model.ErrorResponse{Error: "email already registered"})
				return
			}

			zap.L().Error("error while creating account", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertAccountToResponse(created))
	}
}

func (h *Handler) GetAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := parseAccountID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidAccountID})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		account, err := h.accounts.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, err_storage.ErrAccountNotFound) {
				httputils.WriteJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "account not found"})
				return
			}

			zap.L().Error("error while getting account", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertAccountToResponse(account))
	}
}

func (h *Handler) SetAccountStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := parseAccountID(r)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: ErrInvalidAccountID})
			return
		}

		var request model.SetAccountStatusRequest
		if err := validator.DecodeAndValidate(r.Body, &request); err != nil {
			zap.L().Error("error while parsing account status request", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		account, err := h.accounts.SetActive(ctx, accountID, *request.IsActive)
		if err != nil {
			if errors.Is(err, err_storage.ErrAccountNotFound) {
				httputils.WriteJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "account not found"})
				return
			}

			zap.L().Error("error while updating account status", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertAccountToResponse(account))
	}
}

func parseAccountID(r *http.Request) (entity.AccountID, error) {
	accountID := entity.AccountID(chi.URLParam(r, "accountID"))
	if !accountID.Valid() {
		return entity.AccountID(""), errors.New(ErrInvalidAccountID)
	}

	return accountID, nil
}
