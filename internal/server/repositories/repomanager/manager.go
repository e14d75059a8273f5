// Package repomanager groups the collection repositories behind one factory
// so services can pick their repositories off a shared transaction handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/wheelmarket/wheelmarket/internal/dbx"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/taxonomy"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/users"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/vehicles"
)

type RepositoryManager interface {
	Vehicles(db dbx.DBTX) vehicles.Repository
	Users(db dbx.DBTX) users.Repository
	Taxonomy(db dbx.DBTX) taxonomy.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
