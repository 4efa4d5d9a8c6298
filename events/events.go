package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payments-engine/shared"
)

// Kind names the balance movement an AccountEvent performs.
type Kind string

const (
	Deposited   Kind = "Deposited"
	Withdrawn   Kind = "Withdrawn"
	Disputed    Kind = "Disputed"
	Resolved    Kind = "Resolved"
	Chargedback Kind = "Chargedback"
)

// AccountEvent is the only value that mutates an account. Events are
// produced by the account's command handlers after validation, so applying
// one never fails.
type AccountEvent struct {
	EventID       uuid.UUID            `json:"eventId"`
	TransactionID shared.TransactionID `json:"transactionId"`
	Amount        decimal.Decimal      `json:"amount"`
	Kind          Kind                 `json:"kind"`
	Timestamp     time.Time            `json:"timestamp"`
}

// NewAccountEvent stamps a fresh event with its identity and UTC time.
func NewAccountEvent(txID shared.TransactionID, amount decimal.Decimal, kind Kind) AccountEvent {
	return AccountEvent{
		EventID:       uuid.New(),
		TransactionID: txID,
		Amount:        amount,
		Kind:          kind,
		Timestamp:     time.Now().UTC(),
	}
}
