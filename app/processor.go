package app

import (
	"sort"

	"github.com/shopspring/decimal"

	"payments-engine/command"
	"payments-engine/domain"
	"payments-engine/shared"
	"payments-engine/store"
)

// Processor consumes an ordered stream of transaction records. Order
// matters: a withdrawal is valid or not depending on what was applied
// before it. A rejected record is a normal outcome that leaves all state
// untouched and does not halt the stream.
//
// The interface is not strictly required, but it is the natural point to
// swap the in-memory implementation for something more durable.
type Processor interface {
	Process(txID shared.TransactionID, clientID shared.ClientID, amount *decimal.Decimal, kind shared.TransactionKind) error
}

// InMemoryProcessor owns all processing state explicitly: the global
// transaction registry and one lazily created account per client.
type InMemoryProcessor struct {
	registry store.TransactionRegistry
	accounts map[shared.ClientID]*domain.Account
}

// NewInMemoryProcessor wires a processor to the given registry. The
// registry must not be nil.
func NewInMemoryProcessor(registry store.TransactionRegistry) *InMemoryProcessor {
	return &InMemoryProcessor{
		registry: registry,
		accounts: make(map[shared.ClientID]*domain.Account),
	}
}

// Process runs one record through the chain: consult registry, validate,
// locate or create the account, handle, apply, and commit the registry
// entry for creations. Validation completes strictly before any state
// change, so a failed record mutates nothing.
func (p *InMemoryProcessor) Process(txID shared.TransactionID, clientID shared.ClientID, amount *decimal.Decimal, kind shared.TransactionKind) error {
	var stored *command.CreateTransactionCommand
	if entry, ok := p.registry.Get(txID); ok {
		stored = &entry
	}

	cmd, err := command.Parse(txID, stored, kind, amount)
	if err != nil {
		return err
	}

	acc, ok := p.accounts[clientID]
	if !ok {
		acc = domain.NewAccount()
		p.accounts[clientID] = acc
	}

	switch cmd := cmd.(type) {
	case command.CreateTransactionCommand:
		event, err := acc.HandleCreateTransaction(cmd)
		if err != nil {
			return err
		}
		acc.Apply(event)
		// Committed only once the whole chain has succeeded.
		p.registry.Commit(cmd)
	case command.ModifyTransactionCommand:
		event, err := acc.HandleModifyTransaction(cmd)
		if err != nil {
			return err
		}
		acc.Apply(event)
	}
	return nil
}

// Account returns the account for a client, if one was ever referenced.
func (p *InMemoryProcessor) Account(clientID shared.ClientID) (*domain.Account, bool) {
	acc, ok := p.accounts[clientID]
	return acc, ok
}

// Balances snapshots every account ever referenced, sorted by client id so
// exports are deterministic.
func (p *InMemoryProcessor) Balances() []shared.Balance {
	balances := make([]shared.Balance, 0, len(p.accounts))
	for clientID, acc := range p.accounts {
		balances = append(balances, shared.Balance{
			Client:    clientID,
			Available: acc.Available(),
			Held:      acc.Held(),
			Total:     acc.Total(),
			Locked:    acc.Locked(),
		})
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Client < balances[j].Client
	})
	return balances
}
