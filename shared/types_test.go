package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-engine/shared"
)

func TestParseTransactionKind(t *testing.T) {
	for _, valid := range []string{"deposit", "withdrawal", "dispute", "resolve", "chargeback"} {
		kind, err := shared.ParseTransactionKind(valid)
		require.NoError(t, err)
		assert.Equal(t, shared.TransactionKind(valid), kind)
	}

	_, err := shared.ParseTransactionKind("transfer")
	assert.ErrorContains(t, err, "unknown transaction kind")

	_, err = shared.ParseTransactionKind("Deposit")
	assert.Error(t, err)
}
