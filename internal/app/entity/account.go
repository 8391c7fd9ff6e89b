package entity

import (
	"time"

	"github.com/google/uuid"
)

type AccountID string

func (id AccountID) String() string {
	return string(id)
}

func (id AccountID) Valid() bool {
	_, err := uuid.Parse(string(id))

	return err == nil
}

func NewAccountID() AccountID {
	return AccountID(uuid.NewString())
}

type Account struct {
	ID           AccountID
	Email        string
	PasswordHash string
	FullName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
