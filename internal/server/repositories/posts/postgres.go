// Package posts provides the PostgreSQL-backed repository for wall posts.
package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/dbx"
	"github.com/mhartwell/equinesocial/internal/server/models"
)

const postColumns = `id, replies_to_post, post_from, post_to, title, date, text`

// PostgresRepository implements post storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (replies_to_post, post_from, post_to, title, date, text)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.RepliesToPost, post.PostFrom, post.PostTo, post.Title, post.Date, post.Text).Scan(&post.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.RepliesToPost, &post.PostFrom, &post.PostTo,
		&post.Title, &post.Date, &post.Text,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// ListByWall returns the posts addressed to a wall owner, newest first.
func (r *PostgresRepository) ListByWall(ctx context.Context, wallOwnerID int64) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_to = $1 ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, wallOwnerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(
			&p.ID, &p.RepliesToPost, &p.PostFrom, &p.PostTo,
			&p.Title, &p.Date, &p.Text,
		); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
