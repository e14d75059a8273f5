// Package handlers exposes the marketplace REST API over echo. The contract
// is collection-granular: GET returns a full collection, writes accept a
// whole record, and the taxonomy rides on /vehicles?type=data.
package handlers

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

// VehicleStore is the slice of the vehicle service the handlers use.
type VehicleStore interface {
	List(ctx context.Context) ([]models.VehicleRecord, error)
	Create(ctx context.Context, v *models.VehicleRecord) (*models.VehicleRecord, error)
	Update(ctx context.Context, v *models.VehicleRecord) (*models.VehicleRecord, error)
	Delete(ctx context.Context, id int64) error
	Taxonomy(ctx context.Context) (models.VehicleTaxonomy, error)
	SaveTaxonomy(ctx context.Context, data models.VehicleTaxonomy) error
}

// UserAuth is the slice of the user service the handlers use.
type UserAuth interface {
	List(ctx context.Context) ([]models.UserRecord, error)
	Login(ctx context.Context, email, password string, role models.Role) (*models.AuthResult, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error)
}

// MediaSigner issues presigned upload URLs.
type MediaSigner interface {
	PresignedPutURL(ctx context.Context) (url, key string, err error)
}

// Pinger reports backend liveness. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}
