// Package horses provides the PostgreSQL-backed repository for horse profiles.
package horses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/dbx"
	"github.com/mhartwell/equinesocial/internal/server/models"
)

// updatableColumns is the allowlist for sparse profile updates. owner_id is
// excluded: ownership is immutable after creation.
var updatableColumns = map[string]struct{}{
	"name":       {},
	"city":       {},
	"state":      {},
	"country":    {},
	"birthday":   {},
	"discipline": {},
	"about":      {},
	"award":      {},
}

const horseColumns = `id, owner_id, name, city, state, country, birthday, page_image, discipline, about, award`

// PostgresRepository implements horse storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, horse *models.Horse) (*models.Horse, error) {

	query :=
		`INSERT INTO horses (owner_id, name)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, horse.OwnerID, horse.Name).Scan(&horse.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return horse, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Horse, error) {
	query := `SELECT ` + horseColumns + ` FROM horses WHERE id = $1`

	horse := &models.Horse{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&horse.ID, &horse.OwnerID, &horse.Name,
		&horse.City, &horse.State, &horse.Country, &horse.Birthday,
		&horse.PageImage, &horse.Discipline, &horse.About, &horse.Award,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return horse, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Horse, error) {
	query := `SELECT ` + horseColumns + ` FROM horses WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Horse
	for rows.Next() {
		var h models.Horse
		if err := rows.Scan(
			&h.ID, &h.OwnerID, &h.Name,
			&h.City, &h.State, &h.Country, &h.Birthday,
			&h.PageImage, &h.Discipline, &h.About, &h.Award,
		); err != nil {
			return nil, err
		}
		result = append(result, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateFields applies a sparse patch: only the provided columns are
// written, in a single UPDATE. An empty patch is a no-op.
func (r *PostgresRepository) UpdateFields(ctx context.Context, id int64, fields map[string]string) error {
	query, args, ok, err := dbx.BuildSparseUpdate("horses", fields, updatableColumns, id)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdatePageImage(ctx context.Context, id int64, key string) error {
	query := `UPDATE horses SET page_image = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, key, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
