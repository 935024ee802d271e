// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/walletcore/billetera/internal/domain"
	"github.com/walletcore/billetera/pkg/dbpkg"
	"github.com/walletcore/billetera/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns account RepoPGS scoped to an already open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns account RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (user_id, balance, currency)
VALUES
    ($1, $2, $3)
RETURNING id, user_id, balance, currency, created_at, updated_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, userID int64, balance, currency string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID, balance, currency)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_user_id_fkey":
				return a, domain.ErrOwnerNotFound
			case "accounts_balance_check":
				return a, domain.ErrNegativeInitialBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

// The balance check constraint keeps the relative update atomic: a debit
// below zero fails the statement instead of racing a prior read.
const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1, updated_at = now()
WHERE id = $2
RETURNING id, user_id, balance, currency, created_at, updated_at
`

// AddBalance applies a relative balance change and returns the changed account.
// The amount may be negative to debit the account.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, user_id, balance, currency, created_at, updated_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listForUserQuery = `
SELECT
	id, user_id, balance, currency, created_at, updated_at
FROM accounts
WHERE user_id = $1
ORDER BY id
`

// ListForUser returns all accounts owned by the given user.
func (r *RepoPGS) ListForUser(ctx context.Context, userID int64) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Balance, &a.Currency, &a.CreatedAt, &a.UpdatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// Transfer atomically debits the source account and credits the destination
// account within a single database transaction. No intermediate state is
// observable: on any failure both updates roll back.
func (r *RepoPGS) Transfer(ctx context.Context, fromID, toID int64, amount string) (domain.Account, domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var from, to domain.Account

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return from, to, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	from, to, err = transferTx(ctx, NewTxRepoPGS(tx), fromID, toID, amount)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, domain.Account{}, errorspkg.ErrInternal
	}

	return from, to, nil
}

// TransferTx runs the two balance updates of a transfer against the given
// transaction-scoped repo. Exported so callers composing larger transactional
// groups reuse the same ordering rules.
func TransferTx(ctx context.Context, txRepo *RepoPGS, fromID, toID int64, amount string) (domain.Account, domain.Account, error) {
	return transferTx(ctx, txRepo, fromID, toID, amount)
}

// To avoid deadlocks execute updates in consistent id order.
func transferTx(ctx context.Context, txRepo *RepoPGS, fromID, toID int64, amount string) (domain.Account, domain.Account, error) {
	var from, to domain.Account
	var err error

	if fromID < toID {
		from, err = txRepo.AddBalance(ctx, "-"+amount, fromID)
		if err != nil {
			return domain.Account{}, domain.Account{}, err
		}

		to, err = txRepo.AddBalance(ctx, amount, toID)
		if err != nil {
			return domain.Account{}, domain.Account{}, err
		}
	} else {
		to, err = txRepo.AddBalance(ctx, amount, toID)
		if err != nil {
			return domain.Account{}, domain.Account{}, err
		}

		from, err = txRepo.AddBalance(ctx, "-"+amount, fromID)
		if err != nil {
			return domain.Account{}, domain.Account{}, err
		}
	}

	return from, to, nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Balance,
		&a.Currency,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}
