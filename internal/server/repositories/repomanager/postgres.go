package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/wheelmarket/wheelmarket/internal/dbx"
	"github.com/wheelmarket/wheelmarket/internal/server/migrations"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/taxonomy"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/users"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/vehicles"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Vehicles(db dbx.DBTX) vehicles.Repository {
	return vehicles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Taxonomy(db dbx.DBTX) taxonomy.Repository {
	return taxonomy.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
