package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/logging"
	"github.com/mhartwell/equinesocial/internal/server/auth"
	"github.com/mhartwell/equinesocial/internal/server/config"
	"github.com/mhartwell/equinesocial/internal/server/models"
	"github.com/mhartwell/equinesocial/internal/server/services"
)

const testSecret = "test-secret"

// --- provider fakes ---

type fakeUsers struct {
	registerOut *models.User
	registerErr error

	loginToken string
	loginErr   error

	getOut *models.User
	getErr error

	listOut []*models.User
	listErr error

	updatePrincipal int64
	updateUserID    int64
	updateFields    map[string]string
	updateErr       error

	changeOld string
	changeNew string
	changeErr error
}

func (f *fakeUsers) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerOut != nil {
		return f.registerOut, nil
	}
	return &models.User{ID: 1, Email: email, FirstName: firstName, LastName: lastName}, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsers) ListConnections(ctx context.Context) ([]*models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, principalID, userID int64, fields map[string]string) error {
	f.updatePrincipal = principalID
	f.updateUserID = userID
	f.updateFields = fields
	return f.updateErr
}

func (f *fakeUsers) ChangePassword(ctx context.Context, principalID int64, oldPassword, newPassword string) error {
	f.changeOld = oldPassword
	f.changeNew = newPassword
	return f.changeErr
}

type fakeHorses struct {
	createOut *models.Horse
	createErr error

	getHorse *models.Horse
	getOwner *models.User
	getErr   error

	listOut []*models.Horse
	listErr error

	updatePrincipal int64
	updateHorseID   int64
	updateFields    map[string]string
	updateErr       error
}

func (f *fakeHorses) Create(ctx context.Context, ownerID int64, name string) (*models.Horse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &models.Horse{ID: 1, OwnerID: ownerID, Name: name}, nil
}

func (f *fakeHorses) Get(ctx context.Context, id int64) (*models.Horse, *models.User, error) {
	if f.getErr != nil {
		return nil, nil, f.getErr
	}
	return f.getHorse, f.getOwner, nil
}

func (f *fakeHorses) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Horse, error) {
	return f.listOut, f.listErr
}

func (f *fakeHorses) UpdateProfile(ctx context.Context, principalID, horseID int64, fields map[string]string) error {
	f.updatePrincipal = principalID
	f.updateHorseID = horseID
	f.updateFields = fields
	return f.updateErr
}

type fakePosts struct {
	addPrincipal int64
	addWallOwner int64
	addAuthor    int64
	addRepliesTo int64
	addTitle     string
	addText      string
	addErr       error

	listOut []*models.Post
	listErr error

	deletePrincipal int64
	deletePostID    int64
	deleteErr       error
}

func (f *fakePosts) Add(ctx context.Context, principalID, wallOwnerID, authorID, repliesTo int64, title, text string) (*models.Post, error) {
	f.addPrincipal = principalID
	f.addWallOwner = wallOwnerID
	f.addAuthor = authorID
	f.addRepliesTo = repliesTo
	f.addTitle = title
	f.addText = text
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &models.Post{ID: 1, PostTo: wallOwnerID, PostFrom: authorID, Title: title, Text: text, Date: time.Now()}, nil
}

func (f *fakePosts) ListWall(ctx context.Context, wallOwnerID int64) ([]*models.Post, error) {
	return f.listOut, f.listErr
}

func (f *fakePosts) Delete(ctx context.Context, principalID, postID int64) error {
	f.deletePrincipal = principalID
	f.deletePostID = postID
	return f.deleteErr
}

type fakePhotos struct {
	kind      services.ImageKind
	entityID  int64
	principal int64
	filename  string
	body      string

	key string
	err error
}

func (f *fakePhotos) ReplaceImage(ctx context.Context, kind services.ImageKind, entityID, principalID int64, file io.Reader, originalFilename string) (string, error) {
	f.kind = kind
	f.entityID = entityID
	f.principal = principalID
	f.filename = originalFilename
	b, _ := io.ReadAll(file)
	f.body = string(b)
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

// --- test server plumbing ---

type testDeps struct {
	users  *fakeUsers
	horses *fakeHorses
	posts  *fakePosts
	photos *fakePhotos
}

func newTestServer(t *testing.T) (*Server, *testDeps) {
	t.Helper()

	deps := &testDeps{
		users:  &fakeUsers{},
		horses: &fakeHorses{},
		posts:  &fakePosts{},
		photos: &fakePhotos{key: "k"},
	}

	cfg := &config.Config{
		EndpointAddrHTTP:        ":0",
		SecretKey:               testSecret,
		SessionValidityDuration: time.Hour,
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	s := NewServer(cfg, logger, deps.users, deps.horses, deps.posts, deps.photos)
	return s, deps
}

func sessionCookieFor(t *testing.T, userID int64) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return &http.Cookie{Name: common.SessionCookieName, Value: token}
}
