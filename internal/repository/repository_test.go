package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/pkg/database"
)

func newTestRepos(t *testing.T) (*Repositories, *database.Conn) {
	t.Helper()

	db, err := database.New(&database.Config{
		Driver:   database.DriverSQLite,
		FilePath: filepath.Join(t.TempDir(), "qa.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db, domain.Models()...))

	conn := database.NewConn(db, database.DriverSQLite, zerolog.Nop())
	return NewRepositories(conn), conn
}

func mustUser(t *testing.T, repos *Repositories, fname, lname string) *domain.User {
	t.Helper()
	u := &domain.User{FName: fname, LName: lname}
	require.NoError(t, repos.Users.Save(context.Background(), u))
	return u
}

func mustQuestion(t *testing.T, repos *Repositories, title string, author *domain.User) *domain.Question {
	t.Helper()
	q := &domain.Question{Title: title, Body: title + " body", AuthorID: author.ID}
	require.NoError(t, repos.Questions.Save(context.Background(), q))
	return q
}

func mustLike(t *testing.T, repos *Repositories, q *domain.Question, u *domain.User) {
	t.Helper()
	require.NoError(t, repos.Likes.Save(context.Background(), &domain.QuestionLike{QuestionID: q.ID, UserID: u.ID}))
}

func mustFollow(t *testing.T, repos *Repositories, q *domain.Question, u *domain.User) {
	t.Helper()
	require.NoError(t, repos.Follows.Save(context.Background(), &domain.QuestionFollow{QuestionID: q.ID, UserID: u.ID}))
}

func countRows(t *testing.T, conn *database.Conn, table string) int64 {
	t.Helper()
	rows, err := conn.Execute(context.Background(), "SELECT COUNT(*) AS n FROM "+table)
	require.NoError(t, err)
	n, err := rows[0].Int64("n")
	require.NoError(t, err)
	return n
}
