package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/mhartwell/equinesocial/internal/dbx"
	"github.com/mhartwell/equinesocial/internal/logging"
	"github.com/mhartwell/equinesocial/internal/server/models"
	horsesrepo "github.com/mhartwell/equinesocial/internal/server/repositories/horses"
	postsrepo "github.com/mhartwell/equinesocial/internal/server/repositories/posts"
	"github.com/mhartwell/equinesocial/internal/server/repositories/repomanager"
	usersrepo "github.com/mhartwell/equinesocial/internal/server/repositories/users"
)

// --- shared fakes for service tests ---

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getByIDOut *models.User
	getByIDErr error

	getByEmailOut *models.User
	getByEmailErr error

	listOut []*models.User
	listErr error

	updateFieldsGot map[string]string
	updateFieldsErr error

	updatePasswordGot string
	updatePasswordErr error

	updatePageImageGot string
	updatePageImageErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.getByEmailOut, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsersRepo) UpdateFields(ctx context.Context, id int64, fields map[string]string) error {
	f.updateFieldsGot = fields
	return f.updateFieldsErr
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	f.updatePasswordGot = passwordHash
	return f.updatePasswordErr
}

func (f *fakeUsersRepo) UpdatePageImage(ctx context.Context, id int64, key string) error {
	f.updatePageImageGot = key
	return f.updatePageImageErr
}

type fakeHorsesRepo struct {
	createOut *models.Horse
	createErr error

	getByIDOut *models.Horse
	getByIDErr error

	listByOwnerOut []*models.Horse
	listByOwnerErr error

	updateFieldsGot map[string]string
	updateFieldsErr error

	updatePageImageGot string
	updatePageImageErr error
}

func (f *fakeHorsesRepo) Create(ctx context.Context, h *models.Horse) (*models.Horse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	h.ID = 1
	return h, nil
}

func (f *fakeHorsesRepo) GetByID(ctx context.Context, id int64) (*models.Horse, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakeHorsesRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Horse, error) {
	return f.listByOwnerOut, f.listByOwnerErr
}

func (f *fakeHorsesRepo) UpdateFields(ctx context.Context, id int64, fields map[string]string) error {
	f.updateFieldsGot = fields
	return f.updateFieldsErr
}

func (f *fakeHorsesRepo) UpdatePageImage(ctx context.Context, id int64, key string) error {
	f.updatePageImageGot = key
	return f.updatePageImageErr
}

type fakePostsRepo struct {
	createOut *models.Post
	createErr error

	getByIDOut *models.Post
	getByIDErr error

	listOut []*models.Post
	listErr error

	deletedID int64
	deleteErr error
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	p.ID = 1
	return p, nil
}

func (f *fakePostsRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakePostsRepo) ListByWall(ctx context.Context, wallOwnerID int64) ([]*models.Post, error) {
	return f.listOut, f.listErr
}

func (f *fakePostsRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	h *fakeHorsesRepo
	p *fakePostsRepo

	postsDB dbx.DBTX
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Horses(db dbx.DBTX) horsesrepo.Repository     { return m.h }

func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository {
	m.postsDB = db
	return m.p
}

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

// fakeStore records object-store calls. notFoundErr marks deleteErr as a
// missing-key error for IsNotFound.
type fakeStore struct {
	putKeys []string
	putErr  error

	deletedKeys []string
	deleteErr   error
	notFoundErr bool
}

func (f *fakeStore) Put(ctx context.Context, key string, body io.Reader) error {
	if f.putErr != nil {
		return f.putErr
	}
	if _, err := io.ReadAll(body); err != nil {
		return err
	}
	f.putKeys = append(f.putKeys, key)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return f.deleteErr
}

func (f *fakeStore) IsNotFound(err error) bool {
	return f.notFoundErr && err == f.deleteErr
}

func scratchFileCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	return len(entries)
}
