package horses

import (
	"context"

	"github.com/mhartwell/equinesocial/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, horse *models.Horse) (*models.Horse, error)
	GetByID(ctx context.Context, id int64) (*models.Horse, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Horse, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]string) error
	UpdatePageImage(ctx context.Context, id int64, key string) error
}
