package command

import (
	"errors"
	"fmt"
)

// Reason identifies the structural rule that rejected a record.
type Reason string

const (
	ReasonAmountRequired       Reason = "amount required"
	ReasonNegativeAmount       Reason = "negative amount"
	ReasonExistingTxRequired   Reason = "existing transaction required"
	ReasonDuplicateTransaction Reason = "duplicate transaction"
)

// Error is a command-level validation failure: the record was rejected
// before reaching any account. Action names the attempted action so the
// caller can render a useful message.
type Error struct {
	Reason Reason
	Action string
}

func (e *Error) Error() string {
	switch e.Reason {
	case ReasonAmountRequired:
		return fmt.Sprintf("amount is required for %s", e.Action)
	case ReasonNegativeAmount:
		return fmt.Sprintf("amount must not be negative for %s", e.Action)
	case ReasonExistingTxRequired:
		return fmt.Sprintf("there should be an existing transaction for %s", e.Action)
	case ReasonDuplicateTransaction:
		return fmt.Sprintf("there should not be an existing transaction for %s", e.Action)
	default:
		return string(e.Reason)
	}
}

// IsError reports whether err is (or wraps) a command-level failure.
func IsError(err error) bool {
	var cmdErr *Error
	return errors.As(err, &cmdErr)
}
