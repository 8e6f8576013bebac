// Package cmd hosts the subcommands of the nw command-line tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/storage"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "assets")
	c.Register(&txCmd{}, "assets")
	c.Register(&balanceCmd{}, "assets")
	c.Register(&rmCmd{}, "assets")

	c.Register(&listCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&assistCmd{}, "assistant")
}

// Config is resolved from the environment, with an optional .env file.
type Config struct {
	Backend  string // "file" or "sqlite"
	Path     string // asset file or database path
	Currency string
}

// LoadConfig reads the tool configuration from the environment.
func LoadConfig() Config {
	// A missing .env file is fine, the environment alone is enough.
	_ = godotenv.Load()
	return Config{
		Backend:  getEnv("NW_BACKEND", "file"),
		Path:     getEnv("NW_PATH", "networth.jsonl"),
		Currency: getEnv("NW_CURRENCY", networth.DefaultCurrency),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenStore builds the asset store around the configured storage backend.
// The returned closer is non-nil for backends holding resources.
func OpenStore(cfg Config) (*networth.Store, func() error, error) {
	switch cfg.Backend {
	case "file":
		store, err := networth.NewStore(storage.NewFile(cfg.Path))
		return store, nil, err
	case "sqlite":
		db, err := storage.NewSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		store, err := networth.NewStore(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want file or sqlite)", cfg.Backend)
	}
}
