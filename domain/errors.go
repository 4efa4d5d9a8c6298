package domain

import (
	"errors"
	"fmt"

	"payments-engine/command"
)

// AccountError is an account-level (business) failure. These are ordinary
// outcomes of processing, not technical errors, and callers may choose not
// to surface them.
type AccountError struct {
	message string
}

func NewAccountError(format string, args ...interface{}) *AccountError {
	return &AccountError{message: fmt.Sprintf(format, args...)}
}

func (e *AccountError) Error() string {
	return e.message
}

var (
	ErrAccountFrozen       = NewAccountError("account is frozen, no further operations are allowed")
	ErrInsufficientFunds   = NewAccountError("insufficient funds")
	ErrDisputeNotSupported = NewAccountError("dispute operation is not supported for parent transaction")
)

// DisputeStateError reports a modify command whose dispute-state
// precondition does not hold. UnderDispute is the transaction's actual
// state, kept as data so presentation stays at the boundary.
type DisputeStateError struct {
	Action       command.ModifyAction
	UnderDispute bool
}

func (e *DisputeStateError) Error() string {
	state := "not under dispute"
	if e.UnderDispute {
		state = "already under dispute"
	}
	return fmt.Sprintf("%s cannot be initiated, because the transaction is %s", e.Action, state)
}

// IsAccountError reports whether err is (or wraps) an account-level
// failure, as opposed to a command-level one.
func IsAccountError(err error) bool {
	var accErr *AccountError
	var stateErr *DisputeStateError
	return errors.As(err, &accErr) || errors.As(err, &stateErr)
}
