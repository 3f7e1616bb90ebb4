// Package users provides the PostgreSQL-backed repository for user accounts.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/dbx"
	"github.com/mhartwell/equinesocial/internal/server/models"
)

// updatableColumns is the allowlist for sparse profile updates. Identity and
// credential columns are deliberately excluded.
var updatableColumns = map[string]struct{}{
	"first_name": {},
	"last_name":  {},
	"city":       {},
	"state":      {},
	"country":    {},
	"birthday":   {},
	"discipline": {},
	"about":      {},
	"award":      {},
}

const userColumns = `id, email, password, first_name, last_name, city, state, country, birthday, page_image, discipline, about, award`

// PostgresRepository implements user storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, password, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName).Scan(&user.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.City, &user.State, &user.Country, &user.Birthday,
		&user.PageImage, &user.Discipline, &user.About, &user.Award,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByEmail matches the email case-insensitively, which is how login
// lookups behave.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.City, &user.State, &user.Country, &user.Birthday,
		&user.PageImage, &user.Discipline, &user.About, &user.Award,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
			&u.City, &u.State, &u.Country, &u.Birthday,
			&u.PageImage, &u.Discipline, &u.About, &u.Award,
		); err != nil {
			return nil, err
		}
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateFields applies a sparse patch: only the provided columns are
// written, in a single UPDATE. An empty patch is a no-op.
func (r *PostgresRepository) UpdateFields(ctx context.Context, id int64, fields map[string]string) error {
	query, args, ok, err := dbx.BuildSparseUpdate("users", fields, updatableColumns, id)
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

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdatePageImage(ctx context.Context, id int64, key string) error {
	query := `UPDATE users SET page_image = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, key, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
