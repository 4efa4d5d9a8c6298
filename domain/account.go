package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"payments-engine/command"
	"payments-engine/events"
	"payments-engine/shared"
)

// Account is the aggregate for a single client's balance. It enforces
// business rules through its two command handlers, which validate and
// return events; Apply is the only mutator and is deliberately
// unconditional, because every event was validated when it was produced.
type Account struct {
	available    decimal.Decimal
	held         decimal.Decimal
	locked       bool
	underDispute map[shared.TransactionID]struct{}
}

func NewAccount() *Account {
	return &Account{
		underDispute: make(map[shared.TransactionID]struct{}),
	}
}

func (a *Account) Available() decimal.Decimal { return a.available }
func (a *Account) Held() decimal.Decimal     { return a.held }
func (a *Account) Locked() bool              { return a.locked }

// Total is always derived, never stored.
func (a *Account) Total() decimal.Decimal {
	return a.available.Add(a.held)
}

// HandleCreateTransaction validates a deposit or withdrawal against the
// current state and returns the event to apply.
func (a *Account) HandleCreateTransaction(cmd command.CreateTransactionCommand) (events.AccountEvent, error) {
	if a.locked {
		return events.AccountEvent{}, ErrAccountFrozen
	}

	switch cmd.Action {
	case command.Deposit:
		return events.NewAccountEvent(cmd.TxID, cmd.Amount, events.Deposited), nil
	case command.Withdraw:
		if a.available.GreaterThanOrEqual(cmd.Amount) {
			return events.NewAccountEvent(cmd.TxID, cmd.Amount, events.Withdrawn), nil
		}
		return events.AccountEvent{}, ErrInsufficientFunds
	default:
		return events.AccountEvent{}, fmt.Errorf("unknown create action %q", cmd.Action)
	}
}

// HandleModifyTransaction validates a dispute, resolve or chargeback against
// the transaction's current dispute state and returns the event to apply.
func (a *Account) HandleModifyTransaction(cmd command.ModifyTransactionCommand) (events.AccountEvent, error) {
	if a.locked {
		return events.AccountEvent{}, ErrAccountFrozen
	}

	_, disputed := a.underDispute[cmd.TxID]

	switch {
	case cmd.Action == command.Dispute && !disputed:
		if cmd.CreateAction == command.Withdraw {
			return events.AccountEvent{}, ErrDisputeNotSupported
		}
		// A dispute may drive available negative; there is no balance check.
		return events.NewAccountEvent(cmd.TxID, cmd.Amount, events.Disputed), nil
	case cmd.Action == command.Resolve && disputed:
		return events.NewAccountEvent(cmd.TxID, cmd.Amount, events.Resolved), nil
	case cmd.Action == command.Chargeback && disputed:
		return events.NewAccountEvent(cmd.TxID, cmd.Amount, events.Chargedback), nil
	default:
		return events.AccountEvent{}, &DisputeStateError{Action: cmd.Action, UnderDispute: disputed}
	}
}

// Apply mutates the account state. It is total: events carry no invalid
// transitions because the handlers validated them first.
func (a *Account) Apply(event events.AccountEvent) {
	switch event.Kind {
	case events.Deposited:
		a.available = a.available.Add(event.Amount)
	case events.Withdrawn:
		a.available = a.available.Sub(event.Amount)
	case events.Disputed:
		a.available = a.available.Sub(event.Amount)
		a.held = a.held.Add(event.Amount)
		a.underDispute[event.TransactionID] = struct{}{}
	case events.Resolved:
		a.available = a.available.Add(event.Amount)
		a.held = a.held.Sub(event.Amount)
		delete(a.underDispute, event.TransactionID)
	case events.Chargedback:
		a.held = a.held.Sub(event.Amount)
		a.locked = true
		delete(a.underDispute, event.TransactionID)
	}
}
