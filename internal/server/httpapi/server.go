// Package httpapi exposes the social-network operations over HTTP/JSON:
// sessions, user and horse pages, wall posts, and profile photo uploads.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mhartwell/equinesocial/internal/logging"
	"github.com/mhartwell/equinesocial/internal/server/config"
	"github.com/mhartwell/equinesocial/internal/server/models"
	"github.com/mhartwell/equinesocial/internal/server/services"
)

// UserProvider is what the HTTP layer needs from the user service.
type UserProvider interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListConnections(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, principalID, userID int64, fields map[string]string) error
	ChangePassword(ctx context.Context, principalID int64, oldPassword, newPassword string) error
}

// HorseProvider is what the HTTP layer needs from the horse service.
type HorseProvider interface {
	Create(ctx context.Context, ownerID int64, name string) (*models.Horse, error)
	Get(ctx context.Context, id int64) (*models.Horse, *models.User, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Horse, error)
	UpdateProfile(ctx context.Context, principalID, horseID int64, fields map[string]string) error
}

// PostProvider is what the HTTP layer needs from the post service.
type PostProvider interface {
	Add(ctx context.Context, principalID, wallOwnerID, authorID, repliesTo int64, title, text string) (*models.Post, error)
	ListWall(ctx context.Context, wallOwnerID int64) ([]*models.Post, error)
	Delete(ctx context.Context, principalID, postID int64) error
}

// PhotoProvider is what the HTTP layer needs from the photo service.
type PhotoProvider interface {
	ReplaceImage(ctx context.Context, kind services.ImageKind, entityID, principalID int64, file io.Reader, originalFilename string) (string, error)
}

// Server routes HTTP requests to the services.
type Server struct {
	addr            string
	logger          logging.Logger
	secretKey       []byte
	sessionValidity time.Duration

	users  UserProvider
	horses HorseProvider
	posts  PostProvider
	photos PhotoProvider

	httpServer *http.Server
}

func NewServer(cfg *config.Config, logger logging.Logger, users UserProvider, horses HorseProvider, posts PostProvider, photos PhotoProvider) *Server {
	s := &Server{
		addr:            cfg.EndpointAddrHTTP,
		logger:          logger,
		secretKey:       []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
		users:           users,
		horses:          horses,
		posts:           posts,
		photos:          photos,
	}

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
	}

	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Post("/login", s.handleLogin)
	r.Post("/adduser", s.handleAddUser)

	r.Get("/horse_page/{id}", s.handleHorsePage)

	// post add/delete carry the author in the path; a session is attached
	// when present and enforced by the post service policy
	r.With(s.optionalAuth).Post("/adduserpost/{user_id}/{submit_id}", s.handleAddUserPost)
	r.With(s.optionalAuth).Get("/deleteuserpost/{post_id}/{user_id}", s.handleDeleteUserPost)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/user_page/{id}", s.handleUserPage)
		r.Get("/my_connections/", s.handleMyConnections)
		r.Get("/logout", s.handleLogout)

		r.Post("/user_page/upload_photo/", s.handleUserPhotoUpload)
		r.Post("/horse_page/upload_photo/{id}", s.handleHorsePhotoUpload)

		r.Post("/user_page/update", s.handleUserUpdate)
		r.Post("/horse_page/update/{id}", s.handleHorseUpdate)
		r.Post("/update_user_password", s.handleUpdateUserPassword)

		r.Post("/addhorse", s.handleAddHorse)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info(ctx, "http server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "equinesocial",
		"message": "welcome",
	})
}
