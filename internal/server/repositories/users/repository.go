package users

import (
	"context"

	"github.com/mhartwell/equinesocial/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdatePageImage(ctx context.Context, id int64, key string) error
}
