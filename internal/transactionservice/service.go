// Package transactionservice manages business logic layer of transactions.
//
// Every money movement follows the same protocol: validate the input, record
// the transaction as PENDING, apply the balance mutation, and finalize the
// record as COMPLETED or FAILED. On the success path the mutation and the
// COMPLETED update commit as one transactional group; the FAILED update is a
// separate best-effort write so a rolled back mutation cannot erase the
// failure record.
package transactionservice

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/walletcore/billetera/internal/domain"
	"github.com/walletcore/billetera/pkg/currencypkg"
)

// Default limits used when a caller asks for a non-positive history size.
const (
	DefaultAccountHistoryLimit = 10
	DefaultUserHistoryLimit    = 20
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	SetStatus(ctx context.Context, id int64, status domain.TransactionStatus) error
	CompleteTransfer(ctx context.Context, txnID, fromID, toID int64, amount string) (domain.Account, domain.Account, error)
	CompleteDeposit(ctx context.Context, txnID, accountID int64, amount string) (domain.Account, error)
	CompleteWithdrawal(ctx context.Context, txnID, accountID int64, amount string) (domain.Account, error)
	ListForAccount(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error)
	ListForUser(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo     Repo
	currency string
}

// New returns transaction service struct to manage transaction business logic.
func New(tr Repo, currency string) *Service {
	if currency == "" {
		currency = currencypkg.DefaultCurrency
	}

	return &Service{
		repo:     tr,
		currency: currency,
	}
}

// RecordTransfer records and executes a transfer between two accounts.
func (s *Service) RecordTransfer(ctx context.Context, fromID, toID int64, amount, description string) (domain.Transaction, error) {
	validated, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	if fromID == toID {
		return domain.Transaction{}, domain.ErrSameAccountTransfer
	}

	txn, err := s.repo.Create(ctx, domain.CreateTransactionParams{
		SenderAccountID:   sql.NullInt64{Int64: fromID, Valid: true},
		ReceiverAccountID: sql.NullInt64{Int64: toID, Valid: true},
		Amount:            validated,
		Currency:          s.currency,
		Type:              domain.TypeTransfer,
		Description:       defaultDescription(description, "Transfer"),
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	_, _, err = s.repo.CompleteTransfer(ctx, txn.ID, fromID, toID, validated)

	return s.finalize(ctx, txn, err)
}

// RecordDeposit records and executes a deposit into an account.
func (s *Service) RecordDeposit(ctx context.Context, accountID int64, amount, description string) (domain.Transaction, error) {
	validated, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn, err := s.repo.Create(ctx, domain.CreateTransactionParams{
		ReceiverAccountID: sql.NullInt64{Int64: accountID, Valid: true},
		Amount:            validated,
		Currency:          s.currency,
		Type:              domain.TypeDeposit,
		Description:       defaultDescription(description, "Deposit"),
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	_, err = s.repo.CompleteDeposit(ctx, txn.ID, accountID, validated)

	return s.finalize(ctx, txn, err)
}

// RecordWithdrawal records and executes a withdrawal from an account.
func (s *Service) RecordWithdrawal(ctx context.Context, accountID int64, amount, description string) (domain.Transaction, error) {
	validated, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn, err := s.repo.Create(ctx, domain.CreateTransactionParams{
		SenderAccountID: sql.NullInt64{Int64: accountID, Valid: true},
		Amount:          validated,
		Currency:        s.currency,
		Type:            domain.TypeWithdrawal,
		Description:     defaultDescription(description, "Withdrawal"),
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	_, err = s.repo.CompleteWithdrawal(ctx, txn.ID, accountID, validated)

	return s.finalize(ctx, txn, err)
}

// finalize settles the transaction's terminal status. A successful mutation
// already committed the COMPLETED update; a failed one gets a best-effort
// FAILED write that never masks the original error.
func (s *Service) finalize(ctx context.Context, txn domain.Transaction, mutationErr error) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	if mutationErr != nil {
		if err := s.repo.SetStatus(ctx, txn.ID, domain.StatusFailed); err != nil {
			l.Error().Err(err).Int64("transaction_id", txn.ID).Msg("cannot mark transaction failed")
		}

		txn.Status = domain.StatusFailed

		return txn, mutationErr
	}

	txn.Status = domain.StatusCompleted

	return txn, nil
}

// HistoryForAccount returns the account's most recent transactions, newest
// first. A non-positive limit falls back to DefaultAccountHistoryLimit.
func (s *Service) HistoryForAccount(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultAccountHistoryLimit
	}

	return s.repo.ListForAccount(ctx, accountID, limit)
}

// HistoryForUser returns the most recent transactions across all of the
// user's accounts, newest first. A non-positive limit falls back to
// DefaultUserHistoryLimit.
func (s *Service) HistoryForUser(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultUserHistoryLimit
	}

	return s.repo.ListForUser(ctx, userID, limit)
}

func validAmount(ctx context.Context, amount string) (string, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return "", domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return "", domain.ErrNegativeAmount
	}

	return amountDecimal.String(), nil
}

func defaultDescription(description, fallback string) sql.NullString {
	if description == "" {
		description = fallback
	}

	return sql.NullString{String: description, Valid: true}
}
