package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ireyes/slotprio/internal/db"
	"github.com/ireyes/slotprio/internal/rule"
)

// loadRules reads the committed rules from the configured store. Without a
// configured database the rule list is empty.
func (a *App) loadRules(ctx context.Context) ([]rule.Rule, error) {
	if a.config.Storage.DBPath == "" {
		return nil, nil
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening rule store: %w", err)
	}
	defer func() { _ = store.Close() }()
	return store.LoadRules(ctx)
}

// saveRules replaces the committed rules in the configured store.
func (a *App) saveRules(ctx context.Context, rules []rule.Rule) error {
	if a.config.Storage.DBPath == "" {
		return fmt.Errorf("no database configured; set storage.db_path")
	}
	if err := os.MkdirAll(filepath.Dir(a.config.Storage.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening rule store: %w", err)
	}
	defer func() { _ = store.Close() }()
	return store.SaveRules(ctx, rules)
}
