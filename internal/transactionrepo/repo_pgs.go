// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/walletcore/billetera/internal/accountrepo"
	"github.com/walletcore/billetera/internal/domain"
	"github.com/walletcore/billetera/pkg/dbpkg"
	"github.com/walletcore/billetera/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewRepoPGS returns transaction RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO transactions
    (sender_account_id, receiver_account_id, amount, currency, type, description, status)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, sender_account_id, receiver_account_id, amount, currency, type, description, status, created_at
`

// Create records the transaction in PENDING status and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.SenderAccountID,
		arg.ReceiverAccountID,
		arg.Amount,
		arg.Currency,
		arg.Type,
		arg.Description,
		domain.StatusPending,
	)

	t, err := scanTransaction(row.Scan)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_sender_account_id_fkey", "transactions_receiver_account_id_fkey":
				return t, domain.ErrAccountNotFound
			case "transactions_amount_check":
				return t, domain.ErrNegativeAmount
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const setStatusQuery = `
UPDATE transactions
SET status = $1
WHERE id = $2
`

// SetStatus moves the transaction to the given lifecycle status.
func (r *RepoPGS) SetStatus(ctx context.Context, id int64, status domain.TransactionStatus) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, setStatusQuery, status, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// CompleteTransfer debits the source account, credits the destination account
// and finalizes the transaction as COMPLETED within a single database
// transaction. On any failure the whole group rolls back and the transaction
// row stays PENDING for the caller to mark FAILED.
func (r *RepoPGS) CompleteTransfer(ctx context.Context, txnID, fromID, toID int64, amount string) (domain.Account, domain.Account, error) {
	var from, to domain.Account

	err := r.execTx(ctx, func(tx *sql.Tx) error {
		var err error

		from, to, err = accountrepo.TransferTx(ctx, accountrepo.NewTxRepoPGS(tx), fromID, toID, amount)
		if err != nil {
			return err
		}

		return r.withTx(tx).SetStatus(ctx, txnID, domain.StatusCompleted)
	})
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	return from, to, nil
}

// CompleteDeposit credits the account and finalizes the transaction as
// COMPLETED within a single database transaction.
func (r *RepoPGS) CompleteDeposit(ctx context.Context, txnID, accountID int64, amount string) (domain.Account, error) {
	return r.completeSingle(ctx, txnID, accountID, amount)
}

// CompleteWithdrawal debits the account and finalizes the transaction as
// COMPLETED within a single database transaction.
func (r *RepoPGS) CompleteWithdrawal(ctx context.Context, txnID, accountID int64, amount string) (domain.Account, error) {
	return r.completeSingle(ctx, txnID, accountID, "-"+amount)
}

func (r *RepoPGS) completeSingle(ctx context.Context, txnID, accountID int64, amount string) (domain.Account, error) {
	var account domain.Account

	err := r.execTx(ctx, func(tx *sql.Tx) error {
		var err error

		account, err = accountrepo.NewTxRepoPGS(tx).AddBalance(ctx, amount, accountID)
		if err != nil {
			return err
		}

		return r.withTx(tx).SetStatus(ctx, txnID, domain.StatusCompleted)
	})
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// execTx runs fn within a database transaction, committing on success and
// rolling back on error.
func (r *RepoPGS) execTx(ctx context.Context, fn func(*sql.Tx) error) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

func (r *RepoPGS) withTx(tx *sql.Tx) *RepoPGS {
	return &RepoPGS{db: tx}
}

const getQuery = `
SELECT
	id, sender_account_id, receiver_account_id, amount, currency, type, description, status, created_at
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	t, err := scanTransaction(row.Scan)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listForAccountQuery = `
SELECT
	id, sender_account_id, receiver_account_id, amount, currency, type, description, status, created_at
FROM transactions
WHERE sender_account_id = $1 OR receiver_account_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

// ListForAccount returns the most recent transactions touching the account.
func (r *RepoPGS) ListForAccount(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error) {
	return r.list(ctx, listForAccountQuery, accountID, limit)
}

const listForUserQuery = `
SELECT DISTINCT
	t.id, t.sender_account_id, t.receiver_account_id, t.amount, t.currency, t.type, t.description, t.status, t.created_at
FROM transactions t
INNER JOIN accounts a ON (t.sender_account_id = a.id OR t.receiver_account_id = a.id)
WHERE a.user_id = $1
ORDER BY t.created_at DESC, t.id DESC
LIMIT $2
`

// ListForUser returns the most recent transactions across all accounts owned
// by the user.
func (r *RepoPGS) ListForUser(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error) {
	return r.list(ctx, listForUserQuery, userID, limit)
}

func (r *RepoPGS) list(ctx context.Context, query string, id int64, limit int32) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, id, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanTransaction(scan func(...interface{}) error) (domain.Transaction, error) {
	var t domain.Transaction

	err := scan(
		&t.ID,
		&t.SenderAccountID,
		&t.ReceiverAccountID,
		&t.Amount,
		&t.Currency,
		&t.Type,
		&t.Description,
		&t.Status,
		&t.CreatedAt,
	)

	return t, err
}
