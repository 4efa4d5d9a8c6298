// Package csvio parses transaction records from CSV and serializes balance
// snapshots back to CSV. The core is format-agnostic; everything here is
// mechanical I/O.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"payments-engine/shared"
)

// Record is one parsed input row. Amount is nil when the column is absent
// or empty, which is the norm for dispute, resolve and chargeback rows.
type Record struct {
	Kind   shared.TransactionKind
	Client shared.ClientID
	Tx     shared.TransactionID
	Amount *decimal.Decimal
}

// Parser reads transaction rows from a CSV stream with the header
// `type,client,tx,amount`. Fields are whitespace-trimmed and the amount
// column may be missing entirely.
type Parser struct {
	reader *csv.Reader
	line   uint64
	header bool
}

func NewParser(source io.Reader) *Parser {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return &Parser{
		reader: reader,
		line:   1,
	}
}

// Next returns the next record together with the input line it occupies.
// io.EOF signals the end of the stream; any other error describes a
// malformed row and the stream remains usable.
func (p *Parser) Next() (Record, uint64, error) {
	if !p.header {
		p.header = true
		if _, err := p.reader.Read(); err != nil {
			if err == io.EOF {
				return Record{}, p.line, io.EOF
			}
			return Record{}, p.line, fmt.Errorf("failed to read CSV header: %w", err)
		}
	}

	p.line++
	line := p.line

	row, err := p.reader.Read()
	if err != nil {
		if err == io.EOF {
			return Record{}, line, io.EOF
		}
		return Record{}, line, fmt.Errorf("malformed CSV row: %w", err)
	}

	record, err := parseRecord(row)
	if err != nil {
		return Record{}, line, err
	}
	return record, line, nil
}

func parseRecord(row []string) (Record, error) {
	if len(row) < 3 {
		return Record{}, fmt.Errorf("expected at least 3 fields (type, client, tx), got %d", len(row))
	}

	kind, err := shared.ParseTransactionKind(strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return Record{}, fmt.Errorf("invalid client id %q: %w", strings.TrimSpace(row[1]), err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid transaction id %q: %w", strings.TrimSpace(row[2]), err)
	}

	var amount *decimal.Decimal
	if len(row) > 3 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				return Record{}, fmt.Errorf("invalid amount %q: %w", raw, err)
			}
			amount = &parsed
		}
	}

	return Record{
		Kind:   kind,
		Client: shared.ClientID(client),
		Tx:     shared.TransactionID(tx),
		Amount: amount,
	}, nil
}
