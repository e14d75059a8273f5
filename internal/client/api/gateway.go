// Package api implements the remote data gateway: a thin authenticated HTTP
// client over the marketplace collection endpoints. Every failure — network,
// non-2xx, malformed body — surfaces as a single *APIError so the data
// service above can treat it uniformly as "fall back to the cache".
package api

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

// Credentials supplies the values for the Authorization header: a bearer
// access token when one is cached, else the session email as the legacy
// fallback. Either may be empty.
type Credentials interface {
	AccessToken(ctx context.Context) string
	SessionEmail(ctx context.Context) string
}

// Gateway is the remote side of the cache-aside pair.
type Gateway interface {
	ListVehicles(ctx context.Context) ([]models.VehicleRecord, error)
	CreateVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error)
	UpdateVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error)
	DeleteVehicle(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) ([]models.UserRecord, error)
	Login(ctx context.Context, email, password string, role models.Role) (*models.AuthResult, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error)

	GetVehicleData(ctx context.Context) (models.VehicleTaxonomy, error)
	SaveVehicleData(ctx context.Context, data models.VehicleTaxonomy) error

	// MediaUploadURL asks the server for a presigned PUT target. The returned
	// key is what listing documents reference.
	MediaUploadURL(ctx context.Context) (url, key string, err error)

	Ping(ctx context.Context) error
}
