// Package server initializes and runs the application: configuration,
// logging, database and migrations, object storage, services, and the HTTP
// endpoint, with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mhartwell/equinesocial/internal/logging"
	"github.com/mhartwell/equinesocial/internal/server/auth"
	"github.com/mhartwell/equinesocial/internal/server/config"
	"github.com/mhartwell/equinesocial/internal/server/httpapi"
	"github.com/mhartwell/equinesocial/internal/server/objectstore"
	"github.com/mhartwell/equinesocial/internal/server/repositories/repomanager"
	"github.com/mhartwell/equinesocial/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := objectstore.NewS3Client(ctx, objectstore.S3Config{
		User:         cfg.S3User,
		Password:     cfg.S3Password,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	hasher := auth.NewPasswordHasher()

	userService := services.NewUserService(db, rm, cfg, hasher)
	horseService := services.NewHorseService(db, rm)
	postService := services.NewPostService(db, rm, cfg)
	photoService := services.NewPhotoService(db, rm, store, cfg, logger)

	httpServer := httpapi.NewServer(cfg, logger, userService, horseService, postService, photoService)

	return &App{config: cfg, logger: logger, db: db, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
