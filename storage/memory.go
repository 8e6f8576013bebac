package storage

import "github.com/etnz/networth"

// Memory keeps the asset collection in memory only. It is the storage used
// by tests and by ephemeral sessions that should not touch the disk.
type Memory struct {
	assets []networth.Asset
}

// NewMemory returns a memory storage seeded with the given assets.
func NewMemory(assets ...networth.Asset) *Memory {
	return &Memory{assets: assets}
}

func (m *Memory) Load() ([]networth.Asset, error) {
	out := make([]networth.Asset, len(m.assets))
	copy(out, m.assets)
	return out, nil
}

func (m *Memory) Save(assets []networth.Asset) error {
	m.assets = make([]networth.Asset, len(assets))
	copy(m.assets, assets)
	return nil
}
