package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrOwnerNotFound indicates that the owner for the account is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrNegativeInitialBalance indicates a negative opening balance.
	ErrNegativeInitialBalance = errors.New("negative initial balance")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrCurrencyNotSupported indicates an unsupported account currency.
	ErrCurrencyNotSupported = errors.New("currency not supported")
)

// Account holds a user's balance for a single currency.
// Balance is a decimal string and never goes below zero.
type Account struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Balance   string    `json:"balance"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
