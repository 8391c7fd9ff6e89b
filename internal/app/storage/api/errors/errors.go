package storage

import "errors"

var (
	ErrEmailExists     = errors.New("account with given email already exists in storage")
	ErrAccountNotFound = errors.New("account with given id doesn't exist in storage")
	ErrAccountInactive = errors.New("account with given id is not active")

	ErrOrderNotFound = errors.New("order with given id doesn't exist in storage")
)
