package vehicles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wheelmarket/wheelmarket/internal/common"
	"github.com/wheelmarket/wheelmarket/internal/dbx"
	"github.com/wheelmarket/wheelmarket/internal/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.VehicleRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM vehicles ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.VehicleRecord{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		var v models.VehicleRecord
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("corrupt vehicle document: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.VehicleRecord, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM vehicles WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	var v models.VehicleRecord
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("corrupt vehicle document: %w", err)
	}
	return &v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.VehicleRecord) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding vehicle: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO vehicles (id, doc) VALUES ($1, $2)`, v.ID, doc)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, v *models.VehicleRecord) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding vehicle: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET doc = $2 WHERE id = $1`, v.ID, doc)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// NextID reserves the next listing identifier. Callers run this inside the
// same transaction as the insert so concurrent creates cannot collide.
func (r *PostgresRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM vehicles`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}
