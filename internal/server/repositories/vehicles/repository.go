// Package vehicles persists listing documents in the vehicles collection.
package vehicles

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.VehicleRecord, error)
	Get(ctx context.Context, id int64) (*models.VehicleRecord, error)
	Create(ctx context.Context, v *models.VehicleRecord) error
	Update(ctx context.Context, v *models.VehicleRecord) error
	Delete(ctx context.Context, id int64) error
	NextID(ctx context.Context) (int64, error)
}
