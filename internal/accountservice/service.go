// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/walletcore/billetera/internal/domain"
	"github.com/walletcore/billetera/pkg/currencypkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, userID int64, balance, currency string) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Account, error)
	AddBalance(ctx context.Context, amount string, id int64) (domain.Account, error)
	Transfer(ctx context.Context, fromID, toID int64, amount string) (domain.Account, domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create opens an account for the given user with the given opening balance.
// An empty currency falls back to the default.
func (s *Service) Create(ctx context.Context, userID int64, initialBalance, currency string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if initialBalance == "" {
		initialBalance = "0"
	}

	balance, err := decimal.NewFromString(initialBalance)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidAmount
	}

	if balance.IsNegative() {
		return domain.Account{}, domain.ErrNegativeInitialBalance
	}

	if currency == "" {
		currency = currencypkg.DefaultCurrency
	}

	if !currencypkg.IsSupportedCurrency(currency) {
		return domain.Account{}, domain.ErrCurrencyNotSupported
	}

	return s.repo.Create(ctx, userID, balance.String(), currency)
}

// Get returns the account for the given account ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// GetBalance returns the balance of the given account.
func (s *Service) GetBalance(ctx context.Context, id int64) (string, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	return account.Balance, nil
}

// ListForUser returns all accounts owned by the given user.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Account, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Deposit adds the given positive amount to the account balance.
func (s *Service) Deposit(ctx context.Context, accountID int64, amount string) (domain.Account, error) {
	validated, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, err
	}

	return s.repo.AddBalance(ctx, validated, accountID)
}

// Withdraw subtracts the given positive amount from the account balance.
// Withdrawing more than the current balance fails with ErrInsufficientBalance
// and leaves the balance unchanged.
func (s *Service) Withdraw(ctx context.Context, accountID int64, amount string) (domain.Account, error) {
	validated, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, err
	}

	return s.repo.AddBalance(ctx, "-"+validated, accountID)
}

// Transfer moves the given positive amount between two distinct accounts as a
// single transactional group.
func (s *Service) Transfer(ctx context.Context, fromID, toID int64, amount string) (domain.Account, domain.Account, error) {
	validated, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	if fromID == toID {
		return domain.Account{}, domain.Account{}, domain.ErrSameAccountTransfer
	}

	return s.repo.Transfer(ctx, fromID, toID, validated)
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
