package posts

import (
	"context"

	"github.com/mhartwell/equinesocial/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	ListByWall(ctx context.Context, wallOwnerID int64) ([]*models.Post, error)
	Delete(ctx context.Context, id int64) error
}
