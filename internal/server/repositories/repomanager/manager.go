package repomanager

import (
	"context"
	"database/sql"

	"github.com/mhartwell/equinesocial/internal/dbx"
	"github.com/mhartwell/equinesocial/internal/server/repositories/horses"
	"github.com/mhartwell/equinesocial/internal/server/repositories/posts"
	"github.com/mhartwell/equinesocial/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Horses(db dbx.DBTX) horses.Repository
	Posts(db dbx.DBTX) posts.Repository
}
