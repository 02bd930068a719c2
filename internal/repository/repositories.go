package repository

import (
	"context"

	"github.com/weiawesome/qa-service/pkg/database"
)

// Repositories holds one repository per entity. Repositories resolve
// relationships through each other, so they are always built together.
type Repositories struct {
	Users     UserRepository
	Questions QuestionRepository
	Replies   ReplyRepository
	Follows   FollowRepository
	Likes     LikeRepository
}

// NewRepositories builds every repository on top of conn.
func NewRepositories(conn *database.Conn) *Repositories {
	repos := &Repositories{}
	repos.Users = &SQLUserRepository{conn: conn, repos: repos}
	repos.Questions = &SQLQuestionRepository{conn: conn, repos: repos}
	repos.Replies = &SQLReplyRepository{conn: conn, repos: repos}
	repos.Follows = &SQLFollowRepository{conn: conn}
	repos.Likes = &SQLLikeRepository{conn: conn}
	return repos
}

// countQuery runs a single-row COUNT query and returns its first column.
func countQuery(ctx context.Context, conn *database.Conn, col, query string, args ...any) (int64, error) {
	rows, err := conn.Execute(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].OptInt64(col)
}
