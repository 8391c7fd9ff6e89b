package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeAndValidate fills dst from a JSON body and checks its validate tags.
func DecodeAndValidate(body io.Reader, dst any) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("error while decoding request body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("request validation failed: %w", err)
	}

	return nil
}
