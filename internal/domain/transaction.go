package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidAmount indicates a malformed amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be greater than zero")
	// ErrSameAccountTransfer indicates a transfer where sender and receiver match.
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")
)

// TransactionType classifies money movements.
type TransactionType string

// Supported transaction types.
const (
	TypeTransfer   TransactionType = "TRANSFER"
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypePayment    TransactionType = "PAYMENT"
)

// ParseTransactionType parses s into a TransactionType.
// Unrecognized values are an error, never a silent default.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeTransfer, TypeDeposit, TypeWithdrawal, TypePayment:
		return TransactionType(s), nil
	}

	return "", fmt.Errorf("unknown transaction type %q", s)
}

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

// Transaction lifecycle states. A transaction is created PENDING and moves
// exactly once to COMPLETED or FAILED. CANCELLED is declared for a future
// cancellation flow; no operation currently reaches it.
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// ParseTransactionStatus parses s into a TransactionStatus.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return TransactionStatus(s), nil
	}

	return "", fmt.Errorf("unknown transaction status %q", s)
}

// Transaction holds a single recorded money movement.
type Transaction struct {
	ID                int64             `json:"id"`
	SenderAccountID   sql.NullInt64     `json:"sender_account_id"`
	ReceiverAccountID sql.NullInt64     `json:"receiver_account_id"`
	Amount            string            `json:"amount"` // must be positive
	Currency          string            `json:"currency"`
	Type              TransactionType   `json:"type"`
	Description       sql.NullString    `json:"description"`
	Status            TransactionStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
}

// IsTransfer reports whether t is a transfer with both accounts set.
func (t Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer && t.SenderAccountID.Valid && t.ReceiverAccountID.Valid
}

// IsDeposit reports whether t is a deposit with the receiver set.
func (t Transaction) IsDeposit() bool {
	return t.Type == TypeDeposit && t.ReceiverAccountID.Valid
}

// IsWithdrawal reports whether t is a withdrawal with the sender set.
func (t Transaction) IsWithdrawal() bool {
	return t.Type == TypeWithdrawal && t.SenderAccountID.Valid
}

// CreateTransactionParams is the input data to record a transaction.
type CreateTransactionParams struct {
	SenderAccountID   sql.NullInt64
	ReceiverAccountID sql.NullInt64
	Amount            string
	Currency          string
	Type              TransactionType
	Description       sql.NullString
}
