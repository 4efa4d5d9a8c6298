package app

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"payments-engine/csvio"
	"payments-engine/store"
)

// ErrorFunc receives each rejected record, keyed by the line number the
// record occupies in the input. The service itself never formats or
// suppresses errors; that is the sink's decision.
type ErrorFunc func(line uint64, err error)

// Service streams CSV transaction records through a processor and exports
// the final balance snapshot. It is the bootstrap glue between the I/O
// collaborators and the core.
type Service struct {
	Input  io.Reader
	Output io.Writer
	Errors ErrorFunc

	// Precision is the number of decimal places in the exported amounts;
	// negative means exact representation.
	Precision int

	Logger *zap.Logger
}

// Run processes the whole input stream and writes the snapshot. Rejected
// records are delivered to the error sink and do not stop the run; only an
// unreadable input or unwritable output fails it.
func (s *Service) Run() error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sink := s.Errors
	if sink == nil {
		sink = func(uint64, error) {}
	}

	processor := NewInMemoryProcessor(store.NewInMemoryRegistry())
	parser := csvio.NewParser(s.Input)

	var accepted, rejected int
	for {
		record, line, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			sink(line, err)
			rejected++
			continue
		}
		if err := processor.Process(record.Tx, record.Client, record.Amount, record.Kind); err != nil {
			sink(line, err)
			rejected++
			continue
		}
		accepted++
	}

	logger.Info("transaction stream processed",
		zap.Int("accepted", accepted),
		zap.Int("rejected", rejected),
	)

	if err := csvio.PrintBalances(s.Output, processor.Balances(), s.Precision); err != nil {
		return fmt.Errorf("failed to export balances: %w", err)
	}
	return nil
}
