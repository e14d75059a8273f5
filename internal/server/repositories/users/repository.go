// Package users persists account documents together with their bcrypt
// password hashes. The hash lives in its own column and never enters the
// JSON document.
package users

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.UserRecord, error)
	GetByEmail(ctx context.Context, email string) (*models.UserRecord, string, error)
	Create(ctx context.Context, u *models.UserRecord, passwordHash string) error
	Update(ctx context.Context, u *models.UserRecord) error
}
