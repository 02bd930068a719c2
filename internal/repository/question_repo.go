package repository

import (
	"context"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/pkg/database"
)

const questionColumns = "questions.id, questions.title, questions.body, questions.author_id"

// SQLQuestionRepository implements QuestionRepository with raw SQL over a Conn.
type SQLQuestionRepository struct {
	conn  *database.Conn
	repos *Repositories
}

// FindByID retrieves a question by ID.
func (r *SQLQuestionRepository) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE questions.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrQuestionNotFound
	}
	return domain.QuestionFromRow(rows[0])
}

// FindByAuthorID returns every question written by authorID.
func (r *SQLQuestionRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]domain.Question, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE questions.author_id = ?
		ORDER BY questions.id`, authorID)
	if err != nil {
		return nil, err
	}
	return domain.QuestionsFromRows(rows)
}

// Author returns the user who wrote the question.
func (r *SQLQuestionRepository) Author(ctx context.Context, q *domain.Question) (*domain.User, error) {
	return r.repos.Users.FindByID(ctx, q.AuthorID)
}

// Replies returns every reply posted on the question, nested or not.
func (r *SQLQuestionRepository) Replies(ctx context.Context, q *domain.Question) ([]domain.Reply, error) {
	return r.repos.Replies.FindByQuestionID(ctx, q.ID)
}

// Followers returns the users following the question.
func (r *SQLQuestionRepository) Followers(ctx context.Context, q *domain.Question) ([]domain.User, error) {
	return r.repos.Follows.FollowersForQuestionID(ctx, q.ID)
}

// Likers returns the users who like the question.
func (r *SQLQuestionRepository) Likers(ctx context.Context, q *domain.Question) ([]domain.User, error) {
	return r.repos.Likes.LikersForQuestionID(ctx, q.ID)
}

// NumLikes returns how many likes the question has.
func (r *SQLQuestionRepository) NumLikes(ctx context.Context, q *domain.Question) (int64, error) {
	return r.repos.Likes.NumLikesForQuestionID(ctx, q.ID)
}

// NumFollowers returns how many users follow the question.
func (r *SQLQuestionRepository) NumFollowers(ctx context.Context, q *domain.Question) (int64, error) {
	return r.repos.Follows.NumFollowersForQuestionID(ctx, q.ID)
}

// MostFollowed returns up to n questions ordered by follower count.
func (r *SQLQuestionRepository) MostFollowed(ctx context.Context, n int) ([]domain.Question, error) {
	return r.repos.Follows.MostFollowedQuestions(ctx, n)
}

// MostLiked returns up to n questions ordered by like count.
func (r *SQLQuestionRepository) MostLiked(ctx context.Context, n int) ([]domain.Question, error) {
	return r.repos.Likes.MostLikedQuestions(ctx, n)
}

// Save inserts a new question or updates an existing one.
func (r *SQLQuestionRepository) Save(ctx context.Context, q *domain.Question) error {
	if q.IsNew() {
		id, err := r.conn.Insert(ctx, `
			INSERT INTO questions (title, body, author_id)
			VALUES (?, ?, ?)`, q.Title, q.Body, q.AuthorID)
		if err != nil {
			return err
		}
		q.ID = id
		return nil
	}

	affected, err := r.conn.Exec(ctx, `
		UPDATE questions
		SET title = ?, body = ?, author_id = ?
		WHERE id = ?`, q.Title, q.Body, q.AuthorID, q.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

var _ QuestionRepository = (*SQLQuestionRepository)(nil)
