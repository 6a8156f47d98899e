package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// memoryStore is an in-memory SnapshotStore that round-trips through JSON the
// way the real stores do, with switchable save failure for divergence tests.
type memoryStore struct {
	mu       sync.Mutex
	data     []byte
	saves    int
	failSave bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) Load(_ context.Context) (*entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, domainerror.ErrSnapshotNotFound
	}
	var snapshot entity.Snapshot
	if err := json.Unmarshal(s.data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *memoryStore) Save(_ context.Context, snapshot *entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("store unavailable")
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	s.data = data
	s.saves++
	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

// saveCount returns how many successful saves happened.
func (s *memoryStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// seqIDGenerator yields id-1, id-2, ... for deterministic assertions.
type seqIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// fixedClock returns a settable point in time.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type testFixture struct {
	engine *Engine
	store  *memoryStore
	clock  *fixedClock
	ids    *seqIDGenerator
}

func newTestEngine(t *testing.T) *testFixture {
	t.Helper()

	store := newMemoryStore()
	clock := &fixedClock{now: date(2024, time.March, 15).Add(9 * time.Hour)}
	ids := &seqIDGenerator{}

	engine, err := NewEngine(context.Background(), store, ids, clock)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	return &testFixture{engine: engine, store: store, clock: clock, ids: ids}
}

func assertLedgerCode(t *testing.T, err error, code domainerror.LedgerErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatalf("expected LedgerError, got %T: %v", err, err)
	}
	if ledgerErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, ledgerErr.Code)
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
