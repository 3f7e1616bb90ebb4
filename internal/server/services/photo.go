package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/filex"
	"github.com/mhartwell/equinesocial/internal/logging"
	"github.com/mhartwell/equinesocial/internal/server/config"
	"github.com/mhartwell/equinesocial/internal/server/objectstore"
	"github.com/mhartwell/equinesocial/internal/server/repositories/repomanager"
)

// ImageKind selects which entity's profile photo is being replaced.
type ImageKind string

const (
	ImageKindUser  ImageKind = "user"
	ImageKindHorse ImageKind = "horse"
)

// PhotoService implements profile photo replacement: stage the upload on
// local disk, evict the previous object, upload the new one, then commit the
// key to the record.
type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       objectstore.Client
	uploadDir   string
	logger      logging.Logger
}

func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, store objectstore.Client, cfg *config.Config, logger logging.Logger) *PhotoService {
	return &PhotoService{
		db:          db,
		repomanager: m,
		store:       store,
		uploadDir:   cfg.UploadDir,
		logger:      logger,
	}
}

// ReplaceImage swaps the profile photo of a user or horse and returns the
// new object key. Only the record owner may do this. The previous object is
// deleted best-effort before the upload; an upload failure returns
// ErrorUploadFailed and leaves the record pointing at its old key. The
// staged scratch file is removed on every exit path.
func (s *PhotoService) ReplaceImage(ctx context.Context, kind ImageKind, entityID, principalID int64, file io.Reader, originalFilename string) (string, error) {

	oldKey, commit, err := s.prepare(ctx, kind, entityID, principalID)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureSubDir(s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("error preparing upload dir: %v", err)
	}

	sanitized := filex.SanitizeFilename(originalFilename)

	// uuid prefix keeps concurrent uploads of same-named files apart
	scratchName := fmt.Sprintf("%v_%s", uuid.New(), sanitized)

	scratchPath, err := filex.SaveScratch(dir, scratchName, file)
	if err != nil {
		return "", fmt.Errorf("error staging upload: %v", err)
	}
	defer func() {
		if err := os.Remove(scratchPath); err != nil {
			s.logger.Warn(ctx, "error removing scratch file", "path", scratchPath, "error", err)
		}
	}()

	s.evictOldKey(ctx, oldKey)

	token, err := common.MakeRandLowerString(12)
	if err != nil {
		return "", common.ErrorInternal
	}
	key := fmt.Sprintf("%d_%s_%s_%s", entityID, kind, token, sanitized)

	staged, err := os.Open(scratchPath)
	if err != nil {
		return "", fmt.Errorf("error reopening staged file: %v", err)
	}
	defer staged.Close()

	if err := s.store.Put(ctx, key, staged); err != nil {
		s.logger.Error(ctx, "photo upload failed", "key", key, "error", err)
		return "", common.ErrorUploadFailed
	}

	if err := commit(ctx, key); err != nil {
		return "", err
	}

	return key, nil
}

// prepare loads the record, checks ownership, and returns the record's
// current object key along with the commit function that writes the new one.
func (s *PhotoService) prepare(ctx context.Context, kind ImageKind, entityID, principalID int64) (string, func(context.Context, string) error, error) {
	switch kind {
	case ImageKindUser:
		repo := s.repomanager.Users(s.db)
		user, err := repo.GetByID(ctx, entityID)
		if err != nil {
			return "", nil, err
		}
		if !canMutateUser(principalID, user) {
			return "", nil, common.ErrorForbidden
		}
		return user.PageImage, func(ctx context.Context, key string) error {
			return repo.UpdatePageImage(ctx, entityID, key)
		}, nil
	case ImageKindHorse:
		repo := s.repomanager.Horses(s.db)
		horse, err := repo.GetByID(ctx, entityID)
		if err != nil {
			return "", nil, err
		}
		if !canMutateHorse(principalID, horse) {
			return "", nil, common.ErrorForbidden
		}
		return horse.PageImage, func(ctx context.Context, key string) error {
			return repo.UpdatePageImage(ctx, entityID, key)
		}, nil
	}
	return "", nil, fmt.Errorf("unknown image kind: %s", kind)
}

// evictOldKey deletes the previous object if there was one. A missing object
// is fine; any other storage failure is logged and swallowed so the
// replacement can proceed.
func (s *PhotoService) evictOldKey(ctx context.Context, oldKey string) {
	if oldKey == "" {
		return
	}
	if err := s.store.Delete(ctx, oldKey); err != nil {
		if s.store.IsNotFound(err) {
			return
		}
		s.logger.Warn(ctx, "error deleting previous photo", "key", oldKey, "error", err)
	}
}
