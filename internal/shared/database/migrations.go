package database

import (
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
)

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// RunMigrations applies every *.sql file at the root of fsys in lexical
// order, skipping files already recorded in schema_migrations.
func (db *DB) RunMigrations(fsys fs.FS) error {
	logger := slog.With("component", "migrations")

	if _, err := db.Exec(createMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	pending, err := db.pendingMigrations(fsys)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		logger.Debug("Schema up to date")
		return nil
	}

	logger.Info("Applying migrations", "count", len(pending))
	for _, name := range pending {
		if err := db.applyMigration(fsys, name); err != nil {
			logger.Error("Migration failed", "migration", name, "error", err)
			return fmt.Errorf("failed to run migration %s: %w", name, err)
		}
		logger.Info("Migration applied", "migration", name)
	}
	return nil
}

func (db *DB) pendingMigrations(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var applied []string
	if err := db.Select(&applied, "SELECT version FROM schema_migrations"); err != nil {
		return nil, fmt.Errorf("failed to load applied migrations: %w", err)
	}

	var pending []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") || slices.Contains(applied, name) {
			continue
		}
		pending = append(pending, name)
	}
	slices.Sort(pending)
	return pending, nil
}

// applyMigration runs one file and records it in the same transaction, so a
// failing script leaves neither schema changes nor a version row behind.
func (db *DB) applyMigration(fsys fs.FS, name string) (err error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(string(content)); err != nil {
		return err
	}
	if _, err = tx.Exec(tx.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), name); err != nil {
		return err
	}
	return tx.Commit()
}
