package taxonomy

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wheelmarket/wheelmarket/internal/common"
	"github.com/wheelmarket/wheelmarket/internal/dbx"
	"github.com/wheelmarket/wheelmarket/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (models.VehicleTaxonomy, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM vehicle_data WHERE id = 1`).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	var data models.VehicleTaxonomy
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("corrupt taxonomy document: %w", err)
	}
	return data, nil
}

func (r *PostgresRepository) Save(ctx context.Context, data models.VehicleTaxonomy) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding taxonomy: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO vehicle_data (id, doc) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`, doc)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
