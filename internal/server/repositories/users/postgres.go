package users

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.UserRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.UserRecord{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		var u models.UserRecord
		if err := json.Unmarshal(doc, &u); err != nil {
			return nil, fmt.Errorf("corrupt user document: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// GetByEmail returns the account document and its password hash. The lookup
// key is the normalized email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.UserRecord, string, error) {
	var (
		doc  []byte
		hash string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT doc, password_hash FROM users WHERE email = $1`,
		models.EmailKey(email)).Scan(&doc, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", common.ErrNotFound
		}
		return nil, "", fmt.Errorf("db error: %w", err)
	}
	var u models.UserRecord
	if err := json.Unmarshal(doc, &u); err != nil {
		return nil, "", fmt.Errorf("corrupt user document: %w", err)
	}
	return &u, hash, nil
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.UserRecord, passwordHash string) error {
	sanitized := u.Sanitized()
	doc, err := json.Marshal(sanitized)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, doc) VALUES ($1, $2, $3)`,
		models.EmailKey(u.Email), passwordHash, doc)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, u *models.UserRecord) error {
	sanitized := u.Sanitized()
	doc, err := json.Marshal(sanitized)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET doc = $2 WHERE email = $1`,
		models.EmailKey(u.Email), doc)
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
