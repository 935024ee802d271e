package domain

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	testCases := []struct {
		input   string
		want    TransactionType
		wantErr bool
	}{
		{input: "TRANSFER", want: TypeTransfer},
		{input: "DEPOSIT", want: TypeDeposit},
		{input: "WITHDRAWAL", want: TypeWithdrawal},
		{input: "PAYMENT", want: TypePayment},
		{input: "transfer", wantErr: true},
		{input: "REFUND", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTransactionType(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseTransactionStatus(t *testing.T) {
	testCases := []struct {
		input   string
		want    TransactionStatus
		wantErr bool
	}{
		{input: "PENDING", want: StatusPending},
		{input: "COMPLETED", want: StatusCompleted},
		{input: "FAILED", want: StatusFailed},
		{input: "CANCELLED", want: StatusCancelled},
		{input: "DONE", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTransactionStatus(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseUserType(t *testing.T) {
	got, err := ParseUserType("CUSTOMER")
	require.NoError(t, err)
	require.Equal(t, UserTypeCustomer, got)

	got, err = ParseUserType("ADMIN")
	require.NoError(t, err)
	require.Equal(t, UserTypeAdmin, got)

	_, err = ParseUserType("ROOT")
	require.Error(t, err)
}

func TestTransactionShapePredicates(t *testing.T) {
	sender := sql.NullInt64{Int64: 1, Valid: true}
	receiver := sql.NullInt64{Int64: 2, Valid: true}

	transfer := Transaction{Type: TypeTransfer, SenderAccountID: sender, ReceiverAccountID: receiver}
	require.True(t, transfer.IsTransfer())
	require.False(t, transfer.IsDeposit())
	require.False(t, transfer.IsWithdrawal())

	// A transfer missing either side is malformed.
	require.False(t, Transaction{Type: TypeTransfer, SenderAccountID: sender}.IsTransfer())
	require.False(t, Transaction{Type: TypeTransfer, ReceiverAccountID: receiver}.IsTransfer())

	deposit := Transaction{Type: TypeDeposit, ReceiverAccountID: receiver}
	require.True(t, deposit.IsDeposit())
	require.False(t, deposit.IsTransfer())

	withdrawal := Transaction{Type: TypeWithdrawal, SenderAccountID: sender}
	require.True(t, withdrawal.IsWithdrawal())
	require.False(t, withdrawal.IsDeposit())
}
