package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/server/models"
	"github.com/mhartwell/equinesocial/internal/server/repositories/repomanager"
)

// HorseService manages horse profiles.
type HorseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewHorseService(db *sql.DB, m repomanager.RepositoryManager) *HorseService {
	return &HorseService{db: db, repomanager: m}
}

// Create registers a horse owned by the principal.
func (s *HorseService) Create(ctx context.Context, ownerID int64, name string) (*models.Horse, error) {

	horse := &models.Horse{OwnerID: ownerID, Name: name}

	repo := s.repomanager.Horses(s.db)

	horse, err := repo.Create(ctx, horse)
	if err != nil {
		return nil, fmt.Errorf("error creating horse: %v", err)
	}

	return horse, nil
}

// Get returns the horse together with its owner's record.
func (s *HorseService) Get(ctx context.Context, id int64) (*models.Horse, *models.User, error) {

	horse, err := s.repomanager.Horses(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	owner, err := s.repomanager.Users(s.db).GetByID(ctx, horse.OwnerID)
	if err != nil {
		return nil, nil, err
	}

	return horse, owner, nil
}

// ListByOwner returns all horses owned by a user.
func (s *HorseService) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Horse, error) {
	return s.repomanager.Horses(s.db).ListByOwner(ctx, ownerID)
}

// UpdateProfile applies a sparse update, owner-gated. owner_id is not an
// updatable column, so ownership cannot be transferred here.
func (s *HorseService) UpdateProfile(ctx context.Context, principalID, horseID int64, fields map[string]string) error {

	repo := s.repomanager.Horses(s.db)

	horse, err := repo.GetByID(ctx, horseID)
	if err != nil {
		return err
	}

	if !canMutateHorse(principalID, horse) {
		return common.ErrorForbidden
	}

	patch := dropEmpty(fields)
	if len(patch) == 0 {
		return nil
	}

	return repo.UpdateFields(ctx, horseID, patch)
}
