package accountrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/walletcore/billetera/internal/domain"
	"github.com/walletcore/billetera/internal/userrepo"
	"github.com/walletcore/billetera/pkg/configpkg"
	"github.com/walletcore/billetera/pkg/currencypkg"
	"github.com/walletcore/billetera/pkg/passpkg"
	"github.com/walletcore/billetera/pkg/randompkg"
)

var (
	testRepo     *RepoPGS
	testUserRepo *userrepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)
	testUserRepo = userrepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomUser(t *testing.T) domain.User {
	passwordHash, err := passpkg.Hash(randompkg.String(10))
	require.NoError(t, err)

	arg := domain.CreateUserParams{
		FullName:     randompkg.FullName(),
		Email:        randompkg.Email(),
		PasswordHash: passwordHash,
		UserType:     domain.UserTypeCustomer,
	}

	testUser, err := testUserRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, testUser)
	require.NotZero(t, testUser.ID)
	require.NotZero(t, testUser.CreatedAt)

	return testUser
}

func createRandomAccount(t *testing.T, testUser domain.User) domain.Account {
	testBalance := randompkg.MoneyAmountBetween(1_000, 10_000)

	account, err := testRepo.Create(context.Background(), testUser.ID, testBalance, currencypkg.ARS)
	require.NoError(t, err)
	require.NotEmpty(t, account)

	require.Equal(t, testUser.ID, account.UserID)
	require.Equal(t, testBalance, account.Balance)
	require.Equal(t, currencypkg.ARS, account.Currency)

	require.NotZero(t, account.ID)
	require.NotZero(t, account.CreatedAt)

	return account
}

func TestCreate(t *testing.T) {
	testUser := createRandomUser(t)
	createRandomAccount(t, testUser)
}

func TestCreateOwnerNotFound(t *testing.T) {
	account, err := testRepo.Create(context.Background(), -1, "100", currencypkg.ARS)
	require.EqualError(t, err, domain.ErrOwnerNotFound.Error())
	require.Empty(t, account)
}

func TestGet(t *testing.T) {
	testUser := createRandomUser(t)
	testAccount := createRandomAccount(t, testUser)

	account, err := testRepo.Get(context.Background(), testAccount.ID)
	require.NoError(t, err)
	require.Equal(t, testAccount.ID, account.ID)
	require.Equal(t, testAccount.Balance, account.Balance)

	_, err = testRepo.Get(context.Background(), -1)
	require.EqualError(t, err, domain.ErrAccountNotFound.Error())
}

func TestAddBalance(t *testing.T) {
	testUser := createRandomUser(t)
	testAccount := createRandomAccount(t, testUser)

	account, err := testRepo.AddBalance(context.Background(), "100", testAccount.ID)
	require.NoError(t, err)

	want := decimal.RequireFromString(testAccount.Balance).Add(decimal.NewFromInt(100))
	require.True(t, want.Equal(decimal.RequireFromString(account.Balance)))

	_, err = testRepo.AddBalance(context.Background(), "100", -1)
	require.EqualError(t, err, domain.ErrAccountNotFound.Error())
}

func TestAddBalanceInsufficient(t *testing.T) {
	testUser := createRandomUser(t)
	testAccount := createRandomAccount(t, testUser)

	overdraft := decimal.RequireFromString(testAccount.Balance).Add(decimal.NewFromInt(1))

	_, err := testRepo.AddBalance(context.Background(), "-"+overdraft.String(), testAccount.ID)
	require.EqualError(t, err, domain.ErrInsufficientBalance.Error())

	// The failed debit must leave the balance untouched.
	account, err := testRepo.Get(context.Background(), testAccount.ID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString(testAccount.Balance).Equal(decimal.RequireFromString(account.Balance)))
}

func TestListForUser(t *testing.T) {
	testUser := createRandomUser(t)

	for i := 0; i < 3; i++ {
		createRandomAccount(t, testUser)
	}

	accounts, err := testRepo.ListForUser(context.Background(), testUser.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	for _, a := range accounts {
		require.Equal(t, testUser.ID, a.UserID)
	}
}

func TestTransfer(t *testing.T) {
	testUser1 := createRandomUser(t)
	testUser2 := createRandomUser(t)
	fromAccount := createRandomAccount(t, testUser1)
	toAccount := createRandomAccount(t, testUser2)

	amount := decimal.NewFromInt(100)

	from, to, err := testRepo.Transfer(context.Background(), fromAccount.ID, toAccount.ID, amount.String())
	require.NoError(t, err)

	wantFrom := decimal.RequireFromString(fromAccount.Balance).Sub(amount)
	wantTo := decimal.RequireFromString(toAccount.Balance).Add(amount)

	require.True(t, wantFrom.Equal(decimal.RequireFromString(from.Balance)))
	require.True(t, wantTo.Equal(decimal.RequireFromString(to.Balance)))

	// Conservation: the two balances move by the same amount.
	sumBefore := decimal.RequireFromString(fromAccount.Balance).Add(decimal.RequireFromString(toAccount.Balance))
	sumAfter := decimal.RequireFromString(from.Balance).Add(decimal.RequireFromString(to.Balance))
	require.True(t, sumBefore.Equal(sumAfter))
}

func TestTransferInsufficientRollsBack(t *testing.T) {
	testUser1 := createRandomUser(t)
	testUser2 := createRandomUser(t)
	fromAccount := createRandomAccount(t, testUser1)
	toAccount := createRandomAccount(t, testUser2)

	overdraft := decimal.RequireFromString(fromAccount.Balance).Add(decimal.NewFromInt(1))

	_, _, err := testRepo.Transfer(context.Background(), fromAccount.ID, toAccount.ID, overdraft.String())
	require.EqualError(t, err, domain.ErrInsufficientBalance.Error())

	// Neither side may observe a partial update.
	from, err := testRepo.Get(context.Background(), fromAccount.ID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString(fromAccount.Balance).Equal(decimal.RequireFromString(from.Balance)))

	to, err := testRepo.Get(context.Background(), toAccount.ID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString(toAccount.Balance).Equal(decimal.RequireFromString(to.Balance)))
}
