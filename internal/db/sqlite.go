// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ireyes/slotprio/internal/rule"
)

// SQLite implements rule.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadRules returns the stored rules in evaluation order.
func (s *SQLite) LoadRules(ctx context.Context) ([]rule.Rule, error) {
	query := `
		SELECT id, type, priority, day, time, time_from, time_to, location
		FROM rules
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []rule.Rule
	for rows.Next() {
		var (
			r    rule.Rule
			kind string
		)
		if err := rows.Scan(&r.ID, &kind, &r.Priority, &r.Day, &r.Time, &r.TimeFrom, &r.TimeTo, &r.Location); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		r.Kind = rule.Kind(kind)
		if !r.Kind.Valid() {
			return nil, fmt.Errorf("stored rule %d: unknown type %q", r.ID, kind)
		}
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	return rules, nil
}

// SaveRules replaces the stored rule list atomically. Evaluation order is
// kept in an explicit position column because rule ids are not ordered
// after reordering.
func (s *SQLite) SaveRules(ctx context.Context, rules []rule.Rule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rules`); err != nil {
		return fmt.Errorf("clearing rules: %w", err)
	}

	insert := `
		INSERT INTO rules (id, position, type, priority, day, time, time_from, time_to, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, r := range rules {
		r = rule.Normalize(r)
		_, err := tx.ExecContext(ctx, insert,
			r.ID, i, string(r.Kind), r.Priority, r.Day, r.Time, r.TimeFrom, r.TimeTo, r.Location)
		if err != nil {
			return fmt.Errorf("inserting rule %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rules: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
