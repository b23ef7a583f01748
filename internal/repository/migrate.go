package repository

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// MigrationResult reports the schema version before and after Migrate.
type MigrationResult struct {
	From int32
	To   int32
}

// Migrate applies the embedded migrations over a dedicated connection.
func Migrate(ctx context.Context, dsn string) (MigrationResult, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("construct migrator: %w", err)
	}
	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return MigrationResult{}, fmt.Errorf("migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return MigrationResult{}, fmt.Errorf("load migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("current schema version: %w", err)
	}
	if err := m.Migrate(ctx); err != nil {
		return MigrationResult{}, fmt.Errorf("migrate: %w", err)
	}
	return MigrationResult{From: from, To: int32(len(m.Migrations))}, nil
}
