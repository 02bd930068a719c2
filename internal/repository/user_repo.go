package repository

import (
	"context"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/pkg/database"
)

const userColumns = "users.id, users.fname, users.lname"

// SQLUserRepository implements UserRepository with raw SQL over a Conn.
type SQLUserRepository struct {
	conn  *database.Conn
	repos *Repositories
}

// FindByID retrieves a user by ID.
func (r *SQLUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE users.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrUserNotFound
	}
	return domain.UserFromRow(rows[0])
}

// FindByName retrieves the first user with the given first and last name.
func (r *SQLUserRepository) FindByName(ctx context.Context, fname, lname string) (*domain.User, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE users.fname = ? AND users.lname = ?
		ORDER BY users.id`, fname, lname)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrUserNotFound
	}
	return domain.UserFromRow(rows[0])
}

// AuthoredQuestions returns every question the user wrote.
func (r *SQLUserRepository) AuthoredQuestions(ctx context.Context, user *domain.User) ([]domain.Question, error) {
	return r.repos.Questions.FindByAuthorID(ctx, user.ID)
}

// AuthoredReplies returns every reply the user wrote.
func (r *SQLUserRepository) AuthoredReplies(ctx context.Context, user *domain.User) ([]domain.Reply, error) {
	return r.repos.Replies.FindByUserID(ctx, user.ID)
}

// FollowedQuestions returns the questions the user follows.
func (r *SQLUserRepository) FollowedQuestions(ctx context.Context, user *domain.User) ([]domain.Question, error) {
	return r.repos.Follows.FollowedQuestionsForUserID(ctx, user.ID)
}

// LikedQuestions returns the questions the user likes.
func (r *SQLUserRepository) LikedQuestions(ctx context.Context, user *domain.User) ([]domain.Question, error) {
	return r.repos.Likes.LikedQuestionsForUserID(ctx, user.ID)
}

// AverageKarma returns the number of likes the user's questions received
// divided by the number of distinct questions the user authored.
func (r *SQLUserRepository) AverageKarma(ctx context.Context, user *domain.User) (float64, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT COUNT(question_likes.id) * 1.0 / NULLIF(COUNT(DISTINCT questions.id), 0) AS average_karma
		FROM questions
		LEFT JOIN question_likes ON questions.id = question_likes.question_id
		WHERE questions.author_id = ?`, user.ID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].OptFloat64("average_karma")
}

// Save inserts a new user or updates an existing one.
func (r *SQLUserRepository) Save(ctx context.Context, user *domain.User) error {
	if user.IsNew() {
		id, err := r.conn.Insert(ctx, `
			INSERT INTO users (fname, lname)
			VALUES (?, ?)`, user.FName, user.LName)
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	}

	affected, err := r.conn.Exec(ctx, `
		UPDATE users
		SET fname = ?, lname = ?
		WHERE id = ?`, user.FName, user.LName, user.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Ensure interface is satisfied at compile time.
var _ UserRepository = (*SQLUserRepository)(nil)
