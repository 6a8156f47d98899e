// Package ledger implements the stateful ledger engine: every mutation and
// derivation the finance ledger supports, backed by a whole-snapshot store.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/shopspring/decimal"
)

// DefaultAccountName is the cash account created on first-ever bootstrap.
const DefaultAccountName = "Cash / Wallet"

// Engine holds the entire ledger state and exposes all mutation and query
// operations. There is exactly one writer per store: every public method
// runs the full read-modify-persist sequence under the engine lock, which is
// what keeps delete-is-inverse-of-create sound for update-as-delete-then-create.
type Engine struct {
	mu       sync.Mutex
	store    adapter.SnapshotStore
	ids      adapter.IDGenerator
	clock    adapter.Clock
	notifier adapter.Notifier

	state *entity.Snapshot
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier registers a hook invoked after every successful persist.
func WithNotifier(n adapter.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// NewEngine loads the persisted snapshot, or bootstraps a fresh ledger with
// one default cash account when the store holds nothing yet.
func NewEngine(ctx context.Context, store adapter.SnapshotStore, ids adapter.IDGenerator, clock adapter.Clock, opts ...Option) (*Engine, error) {
	e := &Engine{
		store: store,
		ids:   ids,
		clock: clock,
	}
	for _, opt := range opts {
		opt(e)
	}

	snapshot, err := store.Load(ctx)
	switch {
	case err == nil:
		snapshot.Normalize()
		e.state = snapshot
	case errors.Is(err, domainerror.ErrSnapshotNotFound):
		e.state = entity.NewSnapshot()
		e.state.Accounts = append(e.state.Accounts, entity.NewAccount(
			e.ids.NewID(),
			DefaultAccountName,
			decimal.Zero,
			decimal.Zero,
			e.today(),
		))
		if err := e.persist(ctx); err != nil {
			return nil, err
		}
		slog.Info("Bootstrapped new ledger", "defaultAccount", DefaultAccountName)
	default:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return e, nil
}

// Flush re-persists the current in-memory state. Callers use it to retry
// after a persist failure left the store behind the in-memory state.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.persist(ctx)
}

// FactoryReset clears the persisted snapshot. The engine must not be used
// afterwards; the host restarts it from bootstrap. Callers are responsible
// for gating this behind an explicit user confirmation.
func (e *Engine) FactoryReset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	e.state = entity.NewSnapshot()
	slog.Info("Ledger factory reset completed")
	return nil
}

// persist writes the whole snapshot. On failure the in-memory mutation is
// kept and the divergence is surfaced as a coded error so the caller can
// retry via Flush or discard the engine.
func (e *Engine) persist(ctx context.Context) error {
	if err := e.store.Save(ctx, e.state); err != nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeSnapshotPersist,
			"failed to persist snapshot, in-memory state diverges from store",
			fmt.Errorf("%w: %w", domainerror.ErrSnapshotPersist, err),
		)
	}
	if e.notifier != nil {
		e.notifier.StateChanged()
	}
	return nil
}

// today returns the current calendar day at UTC midnight.
func (e *Engine) today() time.Time {
	return dateOnly(e.clock.Now().UTC())
}

// dateOnly truncates a timestamp to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (e *Engine) findAccount(id string) *entity.Account {
	for _, a := range e.state.Accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (e *Engine) findCard(id string) *entity.Card {
	for _, c := range e.state.Cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Accessors return non-nil copies even when a collection is empty, matching
// the Normalize guarantee, so list endpoints always encode a JSON array.

// Accounts returns the current accounts.
func (e *Engine) Accounts() []*entity.Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(make([]*entity.Account, 0, len(e.state.Accounts)), e.state.Accounts...)
}

// Cards returns the current cards.
func (e *Engine) Cards() []*entity.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(make([]*entity.Card, 0, len(e.state.Cards)), e.state.Cards...)
}

// Incomes returns the current incomes.
func (e *Engine) Incomes() []*entity.Income {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(make([]*entity.Income, 0, len(e.state.Incomes)), e.state.Incomes...)
}

// Expenses returns the current expense rows.
func (e *Engine) Expenses() []*entity.Expense {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(make([]*entity.Expense, 0, len(e.state.Expenses)), e.state.Expenses...)
}

// Budgets returns the current budget items.
func (e *Engine) Budgets() []*entity.Budget {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(make([]*entity.Budget, 0, len(e.state.Budgets)), e.state.Budgets...)
}
