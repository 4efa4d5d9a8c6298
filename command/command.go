// Package command turns raw transaction records into validated domain
// commands. Validation is pure: it reads the current registry occupancy for
// the record's transaction id and never mutates anything.
package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"payments-engine/shared"
)

// CreateAction is the kind of an originating transaction.
type CreateAction string

const (
	Deposit  CreateAction = "Deposit"
	Withdraw CreateAction = "Withdraw"
)

// ModifyAction operates on a previously created transaction.
type ModifyAction string

const (
	Dispute    ModifyAction = "Dispute"
	Resolve    ModifyAction = "Resolve"
	Chargeback ModifyAction = "Chargeback"
)

// CreateTransactionCommand is the canonical record of an originating
// transaction. Once committed to the registry it is immutable.
type CreateTransactionCommand struct {
	TxID   shared.TransactionID
	Action CreateAction
	Amount decimal.Decimal
}

// ModifyTransactionCommand references a transaction already in the
// registry. Amount and CreateAction are copies of the stored entry; the
// input record's own amount field is ignored for modify kinds.
type ModifyTransactionCommand struct {
	TxID         shared.TransactionID
	Action       ModifyAction
	Amount       decimal.Decimal
	CreateAction CreateAction
}

// Command is either a CreateTransactionCommand or a
// ModifyTransactionCommand.
type Command interface {
	isCommand()
}

func (CreateTransactionCommand) isCommand() {}
func (ModifyTransactionCommand) isCommand() {}

// Parse validates a raw record against the registry occupancy for its
// transaction id. A nil stored entry means the id is vacant. The amount is
// optional on the wire and therefore a pointer.
func Parse(txID shared.TransactionID, stored *CreateTransactionCommand, kind shared.TransactionKind, amount *decimal.Decimal) (Command, error) {
	switch kind {
	case shared.KindDeposit:
		return parseCreate(txID, stored, amount, Deposit)
	case shared.KindWithdrawal:
		return parseCreate(txID, stored, amount, Withdraw)
	case shared.KindDispute:
		return parseModify(txID, stored, Dispute)
	case shared.KindResolve:
		return parseModify(txID, stored, Resolve)
	case shared.KindChargeback:
		return parseModify(txID, stored, Chargeback)
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", kind)
	}
}

func parseCreate(txID shared.TransactionID, stored *CreateTransactionCommand, amount *decimal.Decimal, action CreateAction) (Command, error) {
	if stored != nil {
		return nil, &Error{Reason: ReasonDuplicateTransaction, Action: string(action)}
	}
	if amount == nil {
		return nil, &Error{Reason: ReasonAmountRequired, Action: string(action)}
	}
	if amount.IsNegative() {
		return nil, &Error{Reason: ReasonNegativeAmount, Action: string(action)}
	}
	return CreateTransactionCommand{
		TxID:   txID,
		Action: action,
		Amount: *amount,
	}, nil
}

func parseModify(txID shared.TransactionID, stored *CreateTransactionCommand, action ModifyAction) (Command, error) {
	if stored == nil {
		return nil, &Error{Reason: ReasonExistingTxRequired, Action: string(action)}
	}
	return ModifyTransactionCommand{
		TxID:         txID,
		Action:       action,
		Amount:       stored.Amount,
		CreateAction: stored.Action,
	}, nil
}
