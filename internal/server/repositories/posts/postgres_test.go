package posts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+posts\s*\(replies_to_post,\s*post_from,\s*post_to,\s*title,\s*date,\s*text\)`

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(q).
		WithArgs(int64(0), int64(5), int64(7), "hello", now, "nice horse!").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	p := &models.Post{PostFrom: 5, PostTo: 7, Title: "hello", Date: now, Text: "nice horse!"}
	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 11 {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestListByWall_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+posts\s+WHERE\s+post_to\s*=\s*\$1\s+ORDER\s+BY\s+date\s+DESC\s*$`

	later := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "replies_to_post", "post_from", "post_to", "title", "date", "text"}).
		AddRow(int64(2), int64(0), int64(5), int64(7), "second", later, "b").
		AddRow(int64(1), int64(0), int64(5), int64(7), "first", earlier, "a")

	mock.ExpectQuery(q).WithArgs(int64(7)).WillReturnRows(rows)

	got, err := repo.ListByWall(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByWall error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "second" || got[1].Title != "first" {
		t.Fatalf("unexpected posts: %+v", got)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 11); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_MissingRowIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
