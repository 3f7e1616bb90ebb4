package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/dbx"
	"github.com/mhartwell/equinesocial/internal/server/config"
	"github.com/mhartwell/equinesocial/internal/server/models"
	"github.com/mhartwell/equinesocial/internal/server/repositories/repomanager"
)

// PostService manages wall posts. When openPosting is true, adding and
// deleting posts requires no session, matching the historical behavior.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	openPosting bool
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *PostService {
	return &PostService{db: db, repomanager: m, openPosting: cfg.OpenPosting}
}

// Add creates a wall post with a server-assigned date. The author id comes
// from the request path, not the session. principalID is 0 for anonymous
// callers; with open posting disabled those are rejected.
func (s *PostService) Add(ctx context.Context, principalID, wallOwnerID, authorID, repliesTo int64, title, text string) (*models.Post, error) {

	if !s.openPosting && principalID == 0 {
		return nil, common.ErrorUnauthorized
	}

	post := &models.Post{
		RepliesToPost: repliesTo,
		PostFrom:      authorID,
		PostTo:        wallOwnerID,
		Title:         title,
		Date:          time.Now(),
		Text:          text,
	}

	repo := s.repomanager.Posts(s.db)

	post, err := repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %v", err)
	}

	return post, nil
}

// ListWall returns the posts on a user's wall, newest first.
func (s *PostService) ListWall(ctx context.Context, wallOwnerID int64) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).ListByWall(ctx, wallOwnerID)
}

// Delete removes a post. With open posting disabled, only the wall owner or
// the author may delete it; the ownership check and the removal run in one
// transaction so the check applies to the row actually deleted.
func (s *PostService) Delete(ctx context.Context, principalID, postID int64) error {

	if s.openPosting {
		return s.repomanager.Posts(s.db).Delete(ctx, postID)
	}

	if principalID == 0 {
		return common.ErrorUnauthorized
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Posts(tx)

		post, err := repo.GetByID(ctx, postID)
		if err != nil {
			return err
		}

		if principalID != post.PostTo && principalID != post.PostFrom {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, postID)
	})
}
