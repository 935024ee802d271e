package menu

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/walletcore/billetera/internal/domain"
)

type fakeUserService struct {
	users map[string]domain.UserWithoutPassword
}

func (f *fakeUserService) Create(_ context.Context, fullName, email, _ string, userType domain.UserType) (domain.UserWithoutPassword, error) {
	if _, ok := f.users[email]; ok {
		return domain.UserWithoutPassword{}, domain.ErrEmailAlreadyExists
	}

	u := domain.UserWithoutPassword{ID: int64(len(f.users) + 1), FullName: fullName, Email: email, UserType: userType}
	f.users[email] = u

	return u, nil
}

func (f *fakeUserService) Authenticate(_ context.Context, email, password string) (domain.UserWithoutPassword, error) {
	u, ok := f.users[email]
	if !ok {
		return domain.UserWithoutPassword{}, domain.ErrUserNotFound
	}

	if password != "secret" {
		return domain.UserWithoutPassword{}, domain.ErrWrongPassword
	}

	return u, nil
}

func (f *fakeUserService) Get(_ context.Context, id int64) (domain.UserWithoutPassword, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.UserWithoutPassword{}, domain.ErrUserNotFound
}

type fakeAccountService struct {
	accounts map[int64]domain.Account
}

func (f *fakeAccountService) Create(_ context.Context, userID int64, initialBalance, currency string) (domain.Account, error) {
	if initialBalance == "" {
		initialBalance = "0"
	}

	if currency == "" {
		currency = "ARS"
	}

	a := domain.Account{ID: int64(len(f.accounts) + 1), UserID: userID, Balance: initialBalance, Currency: currency}
	f.accounts[a.ID] = a

	return a, nil
}

func (f *fakeAccountService) Get(_ context.Context, id int64) (domain.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

func (f *fakeAccountService) GetBalance(ctx context.Context, id int64) (string, error) {
	a, err := f.Get(ctx, id)
	if err != nil {
		return "", err
	}

	return a.Balance, nil
}

func (f *fakeAccountService) ListForUser(_ context.Context, userID int64) ([]domain.Account, error) {
	items := []domain.Account{}
	for _, a := range f.accounts {
		if a.UserID == userID {
			items = append(items, a)
		}
	}

	return items, nil
}

type fakeTransactionService struct {
	recorded []domain.Transaction
}

func (f *fakeTransactionService) record(txn domain.Transaction) (domain.Transaction, error) {
	txn.ID = int64(len(f.recorded) + 1)
	txn.Status = domain.StatusCompleted
	txn.CreatedAt = time.Now()
	f.recorded = append(f.recorded, txn)

	return txn, nil
}

func (f *fakeTransactionService) RecordTransfer(_ context.Context, fromID, toID int64, amount, _ string) (domain.Transaction, error) {
	return f.record(domain.Transaction{
		SenderAccountID:   sql.NullInt64{Int64: fromID, Valid: true},
		ReceiverAccountID: sql.NullInt64{Int64: toID, Valid: true},
		Amount:            amount,
		Type:              domain.TypeTransfer,
	})
}

func (f *fakeTransactionService) RecordDeposit(_ context.Context, accountID int64, amount, _ string) (domain.Transaction, error) {
	return f.record(domain.Transaction{
		ReceiverAccountID: sql.NullInt64{Int64: accountID, Valid: true},
		Amount:            amount,
		Type:              domain.TypeDeposit,
	})
}

func (f *fakeTransactionService) RecordWithdrawal(_ context.Context, accountID int64, amount, _ string) (domain.Transaction, error) {
	return f.record(domain.Transaction{
		SenderAccountID: sql.NullInt64{Int64: accountID, Valid: true},
		Amount:          amount,
		Type:            domain.TypeWithdrawal,
	})
}

func (f *fakeTransactionService) HistoryForAccount(_ context.Context, accountID int64, _ int32) ([]domain.Transaction, error) {
	items := []domain.Transaction{}
	for _, t := range f.recorded {
		if (t.SenderAccountID.Valid && t.SenderAccountID.Int64 == accountID) ||
			(t.ReceiverAccountID.Valid && t.ReceiverAccountID.Int64 == accountID) {
			items = append(items, t)
		}
	}

	return items, nil
}

func (f *fakeTransactionService) HistoryForUser(_ context.Context, _ int64, _ int32) ([]domain.Transaction, error) {
	return f.recorded, nil
}

func runScript(t *testing.T, lines ...string) (string, *fakeTransactionService) {
	t.Helper()

	users := &fakeUserService{users: map[string]domain.UserWithoutPassword{
		"ana@test.com": {ID: 1, FullName: "Ana", Email: "ana@test.com", UserType: domain.UserTypeCustomer},
	}}
	accounts := &fakeAccountService{accounts: map[int64]domain.Account{}}
	transactions := &fakeTransactionService{}

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	m := New(in, &out, zerolog.Nop(), users, accounts, transactions)
	m.Run()

	return out.String(), transactions
}

func TestRunQuit(t *testing.T) {
	out, _ := runScript(t, "3")
	require.Contains(t, out, "VIRTUAL WALLET")
	require.Contains(t, out, "Thanks for using the virtual wallet")
}

func TestRunInvalidOption(t *testing.T) {
	out, _ := runScript(t, "banana", "3")
	require.Contains(t, out, "Error: invalid option")
}

func TestLoginAndDeposit(t *testing.T) {
	out, transactions := runScript(t,
		"1",            // log in
		"ana@test.com", // email
		"secret",       // password
		"1",            // create account
		"1000",         // initial balance
		"",             // currency
		"5",            // deposit
		"1",            // account id
		"250",          // amount
		"9",            // quit
	)

	require.Contains(t, out, "Welcome Ana!")
	require.Contains(t, out, "Account created with ID: 1")
	require.Contains(t, out, "Deposit completed, transaction ID: 1")
	require.Len(t, transactions.recorded, 1)
	require.Equal(t, domain.TypeDeposit, transactions.recorded[0].Type)
}

func TestLoginWrongPassword(t *testing.T) {
	out, _ := runScript(t,
		"1",
		"ana@test.com",
		"nope",
		"3",
	)

	require.Contains(t, out, "Error: invalid credentials")
}

func TestRegisterAndTransfer(t *testing.T) {
	out, transactions := runScript(t,
		"2",            // register
		"Bob Martinez", // full name
		"bob@test.com", // email
		"secret",       // password
		"1",            // create account
		"500",
		"ARS",
		"3", // send money
		"1", // from
		"2", // to
		"100",
		"rent", // description
		"9",
	)

	require.Contains(t, out, "User registered with ID: 2")
	require.Contains(t, out, "Transfer completed, transaction ID: 1")
	require.Len(t, transactions.recorded, 1)
	require.Equal(t, domain.TypeTransfer, transactions.recorded[0].Type)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), id)

	_, err = ParseID("abc")
	require.Error(t, err)

	_, err = ParseID("-1")
	require.Error(t, err)
}

func TestFormatTransaction(t *testing.T) {
	txn := domain.Transaction{
		ID:                3,
		SenderAccountID:   sql.NullInt64{Int64: 1, Valid: true},
		ReceiverAccountID: sql.NullInt64{Int64: 2, Valid: true},
		Amount:            "100",
		Currency:          "ARS",
		Type:              domain.TypeTransfer,
		Description:       sql.NullString{String: "rent", Valid: true},
		Status:            domain.StatusCompleted,
		CreatedAt:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	got := FormatTransaction(txn)
	require.Contains(t, got, "#3")
	require.Contains(t, got, "TRANSFER")
	require.Contains(t, got, "from 1")
	require.Contains(t, got, "to 2")
	require.Contains(t, got, "(rent)")
	require.Contains(t, got, "COMPLETED")
}
