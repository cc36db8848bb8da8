package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS rules (
			id        INTEGER NOT NULL,
			position  INTEGER NOT NULL,
			type      TEXT NOT NULL CHECK(type IN ('day', 'day_time', 'time_range', 'location')),
			priority  INTEGER NOT NULL CHECK(priority BETWEEN 1 AND 100),
			day       TEXT NOT NULL DEFAULT '',
			time      TEXT NOT NULL DEFAULT '',
			time_from TEXT NOT NULL DEFAULT '',
			time_to   TEXT NOT NULL DEFAULT '',
			location  TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (position)
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating rules table: %w", err)
	}

	return nil
}
