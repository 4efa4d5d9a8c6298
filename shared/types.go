package shared

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client; one account exists per client, created
// lazily on first reference.
type ClientID uint16

// TransactionID identifies a transaction globally across all clients: once
// a creation record uses an id, no other client may reuse it.
type TransactionID uint32

// TransactionKind is the raw record kind as it appears on the input stream.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindDispute    TransactionKind = "dispute"
	KindResolve    TransactionKind = "resolve"
	KindChargeback TransactionKind = "chargeback"
)

// ParseTransactionKind maps an input token to a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return TransactionKind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
}

// Balance is the exported snapshot of a single account. Total is always
// available + held at the time the snapshot is taken.
type Balance struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
