package networth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrAssetNotFound is returned by store and applier operations that reference
// an asset id or name that does not resolve to an existing asset.
var ErrAssetNotFound = errors.New("asset not found")

// Storage is the persistence collaborator injected into the Store. Load is
// called once at construction, Save after every mutating operation.
type Storage interface {
	Load() ([]Asset, error)
	Save([]Asset) error
}

// Store owns the authoritative in-memory asset collection. All mutations go
// through its methods and are serialized by a single mutex, persisted through
// the injected Storage, and broadcast to subscribers as the full updated
// collection. Readers only ever see copies.
type Store struct {
	mu      sync.Mutex
	assets  []Asset
	storage Storage
	subs    []func([]Asset)
	log     *logrus.Logger
}

// NewStore builds a store around the storage collaborator and loads the
// current asset collection from it.
func NewStore(storage Storage) (*Store, error) {
	assets, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load assets: %w", err)
	}
	return &Store{
		assets:  assets,
		storage: storage,
		log:     logrus.StandardLogger(),
	}, nil
}

// SetLogger redirects the store's diagnostics.
func (s *Store) SetLogger(log *logrus.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = log
}

// Subscribe registers fn to receive the full asset collection after every
// mutation. Delivery happens synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func([]Asset)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Assets returns a copy of the current collection. The copy shares nothing
// mutable with the store.
func (s *Store) Assets() []Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Find returns a copy of the asset with the given id.
func (s *Store) Find(id uuid.UUID) (Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assets {
		if a.ID == id {
			return a.clone(), true
		}
	}
	return Asset{}, false
}

// FindByName returns a copy of the first asset with that exact name.
func (s *Store) FindByName(name string) (Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assets {
		if a.Name == name {
			return a.clone(), true
		}
	}
	return Asset{}, false
}

// Add appends a new asset to the collection.
func (s *Store) Add(a Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = append(s.assets, a.clone())
	s.persist()
}

// Update replaces the stored asset carrying the same id.
func (s *Store) Update(a Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index(a.ID)
	if !ok {
		return fmt.Errorf("update %s: %w", a.ID, ErrAssetNotFound)
	}
	s.assets[i] = a.clone()
	s.persist()
	return nil
}

// Remove deletes the asset and all its transactions.
func (s *Store) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrAssetNotFound)
	}
	s.assets = append(s.assets[:i], s.assets[i+1:]...)
	s.persist()
	return nil
}

// AppendTransaction appends tx to the asset's ledger, moves the balance by
// the transaction delta and stamps the asset with the transaction time.
func (s *Store) AppendTransaction(id uuid.UUID, tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("append transaction to %s: %w", id, ErrAssetNotFound)
	}
	a := &s.assets[i]
	a.Transactions = append(a.Transactions, tx)
	a.Balance = a.Balance.Add(tx.AmountDelta)
	a.LastUpdated = tx.OccurredAt
	s.persist()
	return nil
}

// SetBalance overwrites the asset's balance directly, bypassing the
// transaction ledger. This path can desynchronize the balance from the
// ledger history; statistics reconstruction assumes it is used knowingly.
func (s *Store) SetBalance(id uuid.UUID, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("set balance of %s: %w", id, ErrAssetNotFound)
	}
	s.assets[i].Balance = balance
	s.assets[i].LastUpdated = time.Now()
	s.persist()
	return nil
}

func (s *Store) index(id uuid.UUID) (int, bool) {
	for i, a := range s.assets {
		if a.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) snapshot() []Asset {
	out := make([]Asset, len(s.assets))
	for i, a := range s.assets {
		out[i] = a.clone()
	}
	return out
}

// persist saves the collection and notifies subscribers. A save failure is
// surfaced as a diagnostic but never rolls back the in-memory mutation.
// Callers must hold the mutex.
func (s *Store) persist() {
	if err := s.storage.Save(s.assets); err != nil {
		s.log.WithError(err).Warn("could not persist assets, in-memory state kept")
	}
	snapshot := s.snapshot()
	for _, fn := range s.subs {
		fn(snapshot)
	}
}
