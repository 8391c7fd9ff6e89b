package converter

import (
	"github.com/avorobyev/go-order-service/internal/app/entity"
	"github.com/avorobyev/go-order-service/internal/app/model"
	"github.com/golang-module/carbon/v2"
)

func ConvertAccountToResponse(account entity.Account) model.AccountResponse {
	return model.AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		FullName:  account.FullName,
		IsActive:  account.IsActive,
		CreatedAt: carbon.CreateFromStdTime(account.CreatedAt).ToRfc3339String(),
		UpdatedAt: carbon.CreateFromStdTime(account.UpdatedAt).ToRfc3339String(),
	}
}
