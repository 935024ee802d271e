// Package menu implements the interactive console menu. It only parses
// input, calls the service layer and renders results; all business rules
// live below it.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/walletcore/billetera/internal/domain"
)

// UserService provides the user operations needed by the menu.
type UserService interface {
	Create(ctx context.Context, fullName, email, password string, userType domain.UserType) (domain.UserWithoutPassword, error)
	Authenticate(ctx context.Context, email, password string) (domain.UserWithoutPassword, error)
	Get(ctx context.Context, id int64) (domain.UserWithoutPassword, error)
}

// AccountService provides the account operations needed by the menu.
type AccountService interface {
	Create(ctx context.Context, userID int64, initialBalance, currency string) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetBalance(ctx context.Context, id int64) (string, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Account, error)
}

// TransactionService provides the money movement operations needed by the menu.
type TransactionService interface {
	RecordTransfer(ctx context.Context, fromID, toID int64, amount, description string) (domain.Transaction, error)
	RecordDeposit(ctx context.Context, accountID int64, amount, description string) (domain.Transaction, error)
	RecordWithdrawal(ctx context.Context, accountID int64, amount, description string) (domain.Transaction, error)
	HistoryForAccount(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error)
	HistoryForUser(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error)
}

// Menu drives the interactive session.
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger

	users        UserService
	accounts     AccountService
	transactions TransactionService

	currentUser *domain.UserWithoutPassword
	running     bool
}

// New returns a Menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, logger zerolog.Logger, us UserService, as AccountService, ts TransactionService) *Menu {
	return &Menu{
		in:           bufio.NewScanner(in),
		out:          out,
		logger:       logger,
		users:        us,
		accounts:     as,
		transactions: ts,
	}
}

// Run processes menu selections until the user quits or input ends.
func (m *Menu) Run() {
	fmt.Fprintln(m.out, "=== VIRTUAL WALLET ===")
	fmt.Fprintln(m.out, "Welcome to the virtual wallet")

	m.running = true
	for m.running {
		if m.currentUser == nil {
			m.guestMenu()
		} else {
			m.sessionMenu()
		}
	}

	fmt.Fprintln(m.out, "Thanks for using the virtual wallet")
}

// opCtx tags every menu operation with its own id so all log lines of one
// selection correlate.
func (m *Menu) opCtx() context.Context {
	l := m.logger.With().Str("operation_id", uuid.NewString()).Logger()
	return l.WithContext(context.Background())
}

func (m *Menu) guestMenu() {
	fmt.Fprintln(m.out, "\n=== MAIN MENU ===")
	fmt.Fprintln(m.out, "1. Log in")
	fmt.Fprintln(m.out, "2. Register")
	fmt.Fprintln(m.out, "3. Quit")

	switch m.prompt("Choose an option: ") {
	case "1":
		m.login()
	case "2":
		m.register()
	case "3":
		m.running = false
	default:
		m.showError("invalid option")
	}
}

func (m *Menu) sessionMenu() {
	fmt.Fprintln(m.out, "\n=== MAIN MENU ===")
	fmt.Fprintf(m.out, "User: %s\n", m.currentUser.FullName)
	fmt.Fprintln(m.out, strings.Repeat("-", 40))
	fmt.Fprintln(m.out, "1. Create account")
	fmt.Fprintln(m.out, "2. Check balance")
	fmt.Fprintln(m.out, "3. Send money")
	fmt.Fprintln(m.out, "4. View history")
	fmt.Fprintln(m.out, "5. Deposit money")
	fmt.Fprintln(m.out, "6. Withdraw money")
	fmt.Fprintln(m.out, "7. View all my accounts")
	fmt.Fprintln(m.out, "8. Log out")
	fmt.Fprintln(m.out, "9. Quit")

	switch m.prompt("Choose an option: ") {
	case "1":
		m.createAccount()
	case "2":
		m.checkBalance()
	case "3":
		m.sendMoney()
	case "4":
		m.viewHistory()
	case "5":
		m.deposit()
	case "6":
		m.withdraw()
	case "7":
		m.listAccounts()
	case "8":
		m.currentUser = nil
		fmt.Fprintln(m.out, "Session closed")
	case "9":
		m.running = false
	default:
		m.showError("invalid option")
	}
}

func (m *Menu) login() {
	email := m.prompt("Email: ")
	password := m.prompt("Password: ")

	if email == "" || password == "" {
		m.showError("email and password are required")
		return
	}

	user, err := m.users.Authenticate(m.opCtx(), email, password)
	if err != nil {
		m.showError("invalid credentials")
		return
	}

	m.currentUser = &user
	fmt.Fprintf(m.out, "Welcome %s!\n", user.FullName)
}

func (m *Menu) register() {
	fullName := m.prompt("Full name: ")
	email := m.prompt("Email: ")
	password := m.prompt("Password: ")

	if fullName == "" || email == "" || password == "" {
		m.showError("all fields are required")
		return
	}

	user, err := m.users.Create(m.opCtx(), fullName, email, password, domain.UserTypeCustomer)
	if err != nil {
		m.showError(err.Error())
		return
	}

	m.currentUser = &user
	fmt.Fprintf(m.out, "User registered with ID: %d\n", user.ID)
}

func (m *Menu) createAccount() {
	balance := m.prompt("Initial balance (empty for 0): ")
	currency := m.prompt("Currency (empty for ARS): ")

	account, err := m.accounts.Create(m.opCtx(), m.currentUser.ID, balance, strings.ToUpper(currency))
	if err != nil {
		m.showError(err.Error())
		return
	}

	fmt.Fprintf(m.out, "Account created with ID: %d\n", account.ID)
}

func (m *Menu) checkBalance() {
	id, ok := m.promptID("Account ID: ")
	if !ok {
		return
	}

	balance, err := m.accounts.GetBalance(m.opCtx(), id)
	if err != nil {
		m.showError(err.Error())
		return
	}

	fmt.Fprintf(m.out, "Balance: %s\n", balance)
}

func (m *Menu) sendMoney() {
	fromID, ok := m.promptID("Source account ID: ")
	if !ok {
		return
	}

	toID, ok := m.promptID("Destination account ID: ")
	if !ok {
		return
	}

	amount := m.prompt("Amount: ")
	description := m.prompt("Description (optional): ")

	txn, err := m.transactions.RecordTransfer(m.opCtx(), fromID, toID, amount, description)
	if err != nil {
		m.showError(err.Error())
		return
	}

	fmt.Fprintf(m.out, "Transfer completed, transaction ID: %d\n", txn.ID)
}

func (m *Menu) deposit() {
	id, ok := m.promptID("Account ID: ")
	if !ok {
		return
	}

	amount := m.prompt("Amount: ")

	txn, err := m.transactions.RecordDeposit(m.opCtx(), id, amount, "")
	if err != nil {
		m.showError(err.Error())
		return
	}

	fmt.Fprintf(m.out, "Deposit completed, transaction ID: %d\n", txn.ID)
}

func (m *Menu) withdraw() {
	id, ok := m.promptID("Account ID: ")
	if !ok {
		return
	}

	amount := m.prompt("Amount: ")

	txn, err := m.transactions.RecordWithdrawal(m.opCtx(), id, amount, "")
	if err != nil {
		m.showError(err.Error())
		return
	}

	fmt.Fprintf(m.out, "Withdrawal completed, transaction ID: %d\n", txn.ID)
}

func (m *Menu) viewHistory() {
	id, ok := m.promptID("Account ID (0 for all your accounts): ")
	if !ok {
		return
	}

	var (
		txns []domain.Transaction
		err  error
	)

	if id == 0 {
		txns, err = m.transactions.HistoryForUser(m.opCtx(), m.currentUser.ID, 0)
	} else {
		txns, err = m.transactions.HistoryForAccount(m.opCtx(), id, 0)
	}

	if err != nil {
		m.showError(err.Error())
		return
	}

	if len(txns) == 0 {
		fmt.Fprintln(m.out, "No transactions found")
		return
	}

	for _, t := range txns {
		fmt.Fprintln(m.out, FormatTransaction(t))
	}
}

func (m *Menu) listAccounts() {
	accounts, err := m.accounts.ListForUser(m.opCtx(), m.currentUser.ID)
	if err != nil {
		m.showError(err.Error())
		return
	}

	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "You have no accounts yet")
		return
	}

	for _, a := range accounts {
		fmt.Fprintf(m.out, "Account %d: %s %s\n", a.ID, a.Balance, a.Currency)
	}
}

func (m *Menu) prompt(label string) string {
	fmt.Fprint(m.out, label)

	if !m.in.Scan() {
		m.running = false
		return ""
	}

	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) promptID(label string) (int64, bool) {
	raw := m.prompt(label)

	id, err := ParseID(raw)
	if err != nil {
		m.showError(err.Error())
		return 0, false
	}

	return id, true
}

func (m *Menu) showError(msg string) {
	fmt.Fprintf(m.out, "Error: %s\n", msg)
}

// ParseID parses a non-negative numeric id from user input.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}

	return id, nil
}

// FormatTransaction renders a transaction as a single history line.
func FormatTransaction(t domain.Transaction) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s] #%d %s %s %s", t.CreatedAt.Format("2006-01-02 15:04:05"), t.ID, t.Type, t.Amount, t.Currency)

	if t.SenderAccountID.Valid {
		fmt.Fprintf(&sb, " from %d", t.SenderAccountID.Int64)
	}

	if t.ReceiverAccountID.Valid {
		fmt.Fprintf(&sb, " to %d", t.ReceiverAccountID.Int64)
	}

	if t.Description.Valid && t.Description.String != "" {
		fmt.Fprintf(&sb, " (%s)", t.Description.String)
	}

	fmt.Fprintf(&sb, " - %s", t.Status)

	return sb.String()
}
