// Package services contains server-side business logic: accounts and
// sessions, horse profiles, wall posts, and the profile photo workflow.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/server/auth"
	"github.com/mhartwell/equinesocial/internal/server/config"
	"github.com/mhartwell/equinesocial/internal/server/models"
	"github.com/mhartwell/equinesocial/internal/server/repositories/repomanager"
)

// UserService handles registration, login, profile updates, and password
// changes.
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	hasher                  *auth.PasswordHasher
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		hasher:                  hasher,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// Register creates a new account storing a bcrypt hash of the password.
func (s *UserService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

// Login matches the email case-insensitively and verifies the password.
// A missing account yields ErrorNotFound so callers can report it separately
// from a wrong password, which yields ErrorUnauthorized. On success it
// returns a signed session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByID returns a single user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// ListConnections returns every registered user.
func (s *UserService) ListConnections(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// UpdateProfile applies a sparse profile update. Only the record owner may
// update it. Empty values are dropped, so an all-empty submission performs
// no write.
func (s *UserService) UpdateProfile(ctx context.Context, principalID, userID int64, fields map[string]string) error {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !canMutateUser(principalID, user) {
		return common.ErrorForbidden
	}

	patch := dropEmpty(fields)
	if len(patch) == 0 {
		return nil
	}

	return repo.UpdateFields(ctx, userID, patch)
}

// ChangePassword verifies the principal's current password before storing a
// hash of the new one.
func (s *UserService) ChangePassword(ctx context.Context, principalID int64, oldPassword, newPassword string) error {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, principalID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(user.PasswordHash, oldPassword) {
		return common.ErrorUnauthorized
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %v", err)
	}

	return repo.UpdatePassword(ctx, principalID, hash)
}
