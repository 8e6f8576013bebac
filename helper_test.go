package networth

import (
	"time"

	"github.com/shopspring/decimal"
)

// D is a helper for tests to build decimals from a float const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testStorage is an in-memory Storage, optionally failing every Save.
type testStorage struct {
	assets  []Asset
	saveErr error
	saves   int
}

func (s *testStorage) Load() ([]Asset, error) { return s.assets, nil }

func (s *testStorage) Save(assets []Asset) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.assets = make([]Asset, len(assets))
	copy(s.assets, assets)
	return nil
}

// newTestStore builds a store over an in-memory storage seeded with assets.
func newTestStore(assets ...Asset) (*Store, *testStorage) {
	storage := &testStorage{assets: assets}
	store, err := NewStore(storage)
	if err != nil {
		panic(err)
	}
	return store, storage
}

// liquidAsset builds a liquid asset with the given name, balance and
// transactions.
func liquidAsset(name string, balance float64, txs ...Transaction) Asset {
	a := NewAsset(name, Liquid, NewSubcategory("Cash"), D(balance))
	a.Transactions = txs
	return a
}

// txAt builds a transaction with the given delta occurring at t.
func txAt(t time.Time, delta float64) Transaction {
	kind := Inflow
	if delta < 0 {
		kind = Outflow
	}
	return NewTransaction(t, D(delta), kind, "")
}
