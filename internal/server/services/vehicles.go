// Package services implements the server's business operations over the
// collection repositories.
package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/wheelmarket/wheelmarket/internal/dbx"
	"github.com/wheelmarket/wheelmarket/internal/listing"
	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/repomanager"
)

type VehicleService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewVehicleService(db *sql.DB, repos repomanager.RepositoryManager) *VehicleService {
	return &VehicleService{db: db, repos: repos}
}

func (s *VehicleService) List(ctx context.Context) ([]models.VehicleRecord, error) {
	return s.repos.Vehicles(s.db).List(ctx)
}

// Create stores a new listing. A zero ID means the server assigns the next
// one; a client-supplied ID is kept so offline-created listings survive a
// later push unchanged. ID assignment and insert share one transaction.
func (s *VehicleService) Create(ctx context.Context, v *models.VehicleRecord) (*models.VehicleRecord, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
	if v.ListingStatus == "" {
		v.ListingStatus = models.StatusActive
	}
	if v.ExpiresAt.IsZero() {
		v.ExpiresAt = listing.ExpiresAt(v.CreatedAt)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Vehicles(tx)
		if v.ID == 0 {
			id, err := repo.NextID(ctx)
			if err != nil {
				return err
			}
			v.ID = id
		}
		return repo.Create(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) Update(ctx context.Context, v *models.VehicleRecord) (*models.VehicleRecord, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now().UTC()

	if err := s.repos.Vehicles(s.db).Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	return s.repos.Vehicles(s.db).Delete(ctx, id)
}

func (s *VehicleService) Taxonomy(ctx context.Context) (models.VehicleTaxonomy, error) {
	return s.repos.Taxonomy(s.db).Get(ctx)
}

func (s *VehicleService) SaveTaxonomy(ctx context.Context, data models.VehicleTaxonomy) error {
	return s.repos.Taxonomy(s.db).Save(ctx, data)
}
