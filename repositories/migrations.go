package repositories

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/checkmarble/todo-backend/infra"
	"github.com/checkmarble/todo-backend/utils"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsFolder = "migrations"

type Migrater struct {
	pgConfig infra.PgConfig
}

func NewMigrater(pgConfig infra.PgConfig) *Migrater {
	return &Migrater{pgConfig: pgConfig}
}

func (m *Migrater) Run(ctx context.Context) error {
	db, err := m.openDb(ctx)
	if err != nil {
		return fmt.Errorf("openDb error: %w", err)
	}
	defer db.Close()

	return runMigrationsWithFolder(ctx, db, migrationsFolder)
}

func (m *Migrater) openDb(ctx context.Context) (*sql.DB, error) {
	migrationDB, err := sql.Open("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := migrationDB.PingContext(ctx); err != nil {
		migrationDB.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return migrationDB, nil
}

func runMigrationsWithFolder(ctx context.Context, db *sql.DB, folderName string) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "Migrations starting to setup DB: "+folderName)

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, folderName); err != nil {
		return fmt.Errorf("unable to run migrations: %w", err)
	}
	return nil
}
