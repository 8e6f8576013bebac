// Package storage provides the persistence collaborators behind the asset
// store's load/save contract: a human-readable JSONL file and a SQLite
// database.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/networth"
)

// File persists the asset collection as a JSONL file, one asset per line.
// A missing file loads as an empty collection.
type File struct {
	Path string
}

// NewFile returns a file storage rooted at path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads the whole collection from the file.
func (f *File) Load() ([]networth.Asset, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open asset file %q: %w", f.Path, err)
	}
	defer file.Close()

	assets, err := networth.DecodeAssets(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode asset file %q: %w", f.Path, err)
	}
	return assets, nil
}

// Save rewrites the whole collection to the file.
func (f *File) Save(assets []networth.Asset) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", f.Path, err)
		}
	}
	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("could not create asset file %q: %w", f.Path, err)
	}
	defer file.Close()

	if err := networth.EncodeAssets(file, assets); err != nil {
		return err
	}
	return file.Close()
}
