package repository

import (
	"context"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/pkg/database"
)

// SQLLikeRepository implements LikeRepository with raw SQL over a Conn.
type SQLLikeRepository struct {
	conn *database.Conn
}

// FindByID retrieves a question like by ID.
func (r *SQLLikeRepository) FindByID(ctx context.Context, id int64) (*domain.QuestionLike, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT question_likes.id, question_likes.user_id, question_likes.question_id
		FROM question_likes
		WHERE question_likes.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrLikeNotFound
	}
	return domain.QuestionLikeFromRow(rows[0])
}

// LikersForQuestionID returns the users who like a question.
func (r *SQLLikeRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]domain.User, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+userColumns+`
		FROM users
		JOIN question_likes ON users.id = question_likes.user_id
		WHERE question_likes.question_id = ?
		ORDER BY users.id`, questionID)
	if err != nil {
		return nil, err
	}
	return domain.UsersFromRows(rows)
}

// NumLikesForQuestionID counts the like rows of a question.
func (r *SQLLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error) {
	return countQuery(ctx, r.conn, "num_likes", `
		SELECT COUNT(*) AS num_likes
		FROM question_likes
		WHERE question_likes.question_id = ?`, questionID)
}

// LikedQuestionsForUserID returns the questions a user likes.
func (r *SQLLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]domain.Question, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		JOIN question_likes ON questions.id = question_likes.question_id
		WHERE question_likes.user_id = ?
		ORDER BY questions.id`, userID)
	if err != nil {
		return nil, err
	}
	return domain.QuestionsFromRows(rows)
}

// MostLikedQuestions returns up to n questions with the most likes, most
// liked first. Questions without likes are never returned.
func (r *SQLLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]domain.Question, error) {
	if n <= 0 {
		return []domain.Question{}, nil
	}
	rows, err := r.conn.Execute(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		JOIN question_likes ON questions.id = question_likes.question_id
		GROUP BY questions.id, questions.title, questions.body, questions.author_id
		ORDER BY COUNT(question_likes.id) DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	return domain.QuestionsFromRows(rows)
}

// Save inserts a new like or updates an existing one.
func (r *SQLLikeRepository) Save(ctx context.Context, l *domain.QuestionLike) error {
	if l.IsNew() {
		id, err := r.conn.Insert(ctx, `
			INSERT INTO question_likes (user_id, question_id)
			VALUES (?, ?)`, l.UserID, l.QuestionID)
		if err != nil {
			return err
		}
		l.ID = id
		return nil
	}

	affected, err := r.conn.Exec(ctx, `
		UPDATE question_likes
		SET user_id = ?, question_id = ?
		WHERE id = ?`, l.UserID, l.QuestionID, l.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

var _ LikeRepository = (*SQLLikeRepository)(nil)
