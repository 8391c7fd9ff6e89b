package validator

import (
	"strings"
	"testing"

	"github.com/avorobyev/go-order-service/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAndValidateCreateOrder(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "correct input data",
			body: `{
				"account_id": "00308dff-b6b1-4f1b-8515-d09d3db49951",
				"product_name": "mechanical keyboard",
				"quantity": 2,
				"unit_price": "19.99"
			}`,
		},
		{
			name: "numeric unit price",
			body: `{
				"account_id": "00308dff-b6b1-4f1b-8515-d09d3db49951",
				"product_name": "mechanical keyboard",
				"quantity": 2,
				"unit_price": 19.99
			}`,
		},
		{
			name:    "invalid json",
			body:    `<invalid json>`,
			wantErr: true,
		},
		{
			name: "missing account id",
			body: `{
				"product_name": "mechanical keyboard",
				"quantity": 2,
				"unit_price": "19.99"
			}`,
			wantErr: true,
		},
		{
			name: "account id is not a uuid",
			body: `{
				"account_id": "42",
				"product_name": "mechanical keyboard",
				"quantity": 2,
				"unit_price": "19.99"
			}`,
			wantErr: true,
		},
		{
			name: "zero quantity",
			body: `{
				"account_id": "00308dff-b6b1-4f1b-8515-d09d3db49951",
				"product_name": "mechanical keyboard",
				"quantity": 0,
				"unit_price": "19.99"
			}`,
			wantErr: true,
		},
		{
			name: "quantity above maximum",
			body: `{
				"account_id": "00308dff-b6b1-4f1b-8515-d09d3db49951",
				"product_name": "mechanical keyboard",
				"quantity": 1001,
				"unit_price": "19.99"
			}`,
			wantErr: true,
		},
		{
			name: "product name too long",
			body: `{
				"account_id": "00308dff-b6b1-4f1b-8515-d09d3db49951",
				"product_name": "` + strings.Repeat("x", 201) + `",
				"quantity": 2,
				"unit_price": "19.99"
			}`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var request model.CreateOrderRequest
			err := DecodeAndValidate(strings.NewReader(test.body), &request)

			if test.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "19.99", request.UnitPrice.StringFixed(2))
		})
	}
}

func TestDecodeAndValidateCreateAccount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "correct input data",
			body: `{"email": "user@example.com", "password": "long enough", "full_name": "Test User"}`,
		},
		{
			name:    "malformed email",
			body:    `{"email": "not-an-email", "password": "long enough"}`,
			wantErr: true,
		},
		{
			name:    "short password",
			body:    `{"email": "user@example.com", "password": "short"}`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var request model.CreateAccountRequest
			err := DecodeAndValidate(strings.NewReader(test.body), &request)

			if test.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
