// Package taxonomy persists the make/model taxonomy as a single document.
package taxonomy

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

type Repository interface {
	Get(ctx context.Context) (models.VehicleTaxonomy, error)
	Save(ctx context.Context, data models.VehicleTaxonomy) error
}
