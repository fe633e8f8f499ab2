package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/orbit-suite/orbit/pkg/log"
)

const (
	migrationAdvisoryLockID = 0x6d696772 // "migr"
	querySeparator          = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type MigrationSource fs.ReadFileFS

func FSMigrations(files fs.ReadFileFS) MigrationSource {
	return files
}

type Migrator struct {
	db     Database
	logger log.Logger
}

func NewMigrator(db Database, logger log.Logger) Migrator {
	return Migrator{
		db:     db,
		logger: logger,
	}
}

func (m Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	_, err := m.db.ExecContext(ctx, "SELECT pg_advisory_lock($1)", migrationAdvisoryLockID)
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}
	defer func() {
		_, _ = m.db.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", migrationAdvisoryLockID)
	}()

	_, err = m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, source := range sources {
		err = m.executeSource(ctx, source)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m Migrator) executeSource(ctx context.Context, source MigrationSource) error {
	fileNames, err := migrationFileNames(source)
	if err != nil {
		return fmt.Errorf("list migration files: %w", err)
	}

	for _, fileName := range fileNames {
		performed, err := m.isPerformed(ctx, fileName)
		if err != nil {
			return err
		}
		if performed {
			continue
		}

		content, err := source.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fileName, err)
		}

		err = m.perform(ctx, fileName, string(content))
		if err != nil {
			return err
		}
	}
	return nil
}

func (m Migrator) isPerformed(ctx context.Context, migrationID string) (bool, error) {
	var id string
	err := m.db.GetContext(ctx, &id, "SELECT id FROM migration WHERE id = $1", migrationID)
	if errors.Is(err, ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get performed migration: %w", err)
	}
	return true, nil
}

func (m Migrator) perform(ctx context.Context, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return fmt.Errorf("migration %s is empty", migrationID)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start migration tx: %w", err)
	}

	err = m.performTx(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit migration tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m Migrator) performTx(ctx context.Context, tx ClientTx, migrationID, migrationSQL string) error {
	_, err := tx.ExecContext(ctx, "INSERT INTO migration (id) VALUES ($1)", migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}
		_, err = tx.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}

func migrationFileNames(source MigrationSource) ([]string, error) {
	var result []string
	err := fs.WalkDir(source, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sql") {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result)
	return result, nil
}
