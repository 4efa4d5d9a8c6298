package store

import (
	"payments-engine/command"
	"payments-engine/shared"
)

// TransactionRegistry is the source of truth for which transaction ids have
// been used by an accepted creation command. The namespace is global across
// clients: the client that created an id is authoritative for later modify
// commands referencing it.
//
// The registry is append-only. Entries are committed only after the whole
// processing chain for a record has succeeded, and are never removed, even
// after a chargeback.
type TransactionRegistry interface {
	// Get returns the stored creation command for id, if any.
	Get(id shared.TransactionID) (command.CreateTransactionCommand, bool)

	// Commit stores the creation command under its transaction id.
	Commit(cmd command.CreateTransactionCommand)
}

// InMemoryRegistry keeps the registry for the lifetime of one run. The core
// is single-writer, so no locking is needed here; a concurrent wrapper must
// serialize its calls.
type InMemoryRegistry struct {
	entries map[shared.TransactionID]command.CreateTransactionCommand
}

func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{
		entries: make(map[shared.TransactionID]command.CreateTransactionCommand),
	}
}

func (r *InMemoryRegistry) Get(id shared.TransactionID) (command.CreateTransactionCommand, bool) {
	cmd, ok := r.entries[id]
	return cmd, ok
}

func (r *InMemoryRegistry) Commit(cmd command.CreateTransactionCommand) {
	r.entries[cmd.TxID] = cmd
}

// Len returns the number of committed entries. Useful for inspecting the
// registry's state in tests.
func (r *InMemoryRegistry) Len() int {
	return len(r.entries)
}
