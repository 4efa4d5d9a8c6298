package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"payments-engine/shared"
)

// PrintBalances writes the snapshot as CSV with the header
// `client,available,held,total,locked`. A negative precision keeps the
// exact decimal representation; otherwise amounts are fixed to that many
// places.
func PrintBalances(output io.Writer, balances []shared.Balance, precision int) error {
	writer := csv.NewWriter(output)

	header := []string{"client", "available", "held", "total", "locked"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, balance := range balances {
		row := []string{
			strconv.FormatUint(uint64(balance.Client), 10),
			formatAmount(balance.Available, precision),
			formatAmount(balance.Held, precision),
			formatAmount(balance.Total, precision),
			strconv.FormatBool(balance.Locked),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for client %d: %w", balance.Client, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

func formatAmount(amount decimal.Decimal, precision int) string {
	if precision < 0 {
		return amount.String()
	}
	return amount.StringFixed(int32(precision))
}
