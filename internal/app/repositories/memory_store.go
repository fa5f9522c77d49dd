package repositories

import (
	"context"
	"sync"

	"github.com/yigit/turmas/internal/app/models"
)

// MemoryStore keeps the ledger in process memory. Snapshots are copied on the
// way in and out so callers never share records with the store.
type MemoryStore struct {
	mu    sync.Mutex
	snap  *models.Snapshot
	saves int
}

var _ SnapshotStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: models.NewSnapshot()}
}

// NewMemoryStoreWith creates a store pre-loaded with a copy of snap
func NewMemoryStoreWith(snap *models.Snapshot) *MemoryStore {
	return &MemoryStore{snap: snap.Clone()}
}

// Load returns a copy of the stored ledger
func (s *MemoryStore) Load(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone(), nil
}

// Save replaces the stored ledger with a copy of snap
func (s *MemoryStore) Save(ctx context.Context, snap *models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
