package repository

import (
	"context"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/pkg/database"
)

// SQLFollowRepository implements FollowRepository with raw SQL over a Conn.
type SQLFollowRepository struct {
	conn *database.Conn
}

// FindByID retrieves a question follow by ID.
func (r *SQLFollowRepository) FindByID(ctx context.Context, id int64) (*domain.QuestionFollow, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT question_follows.id, question_follows.question_id, question_follows.user_id
		FROM question_follows
		WHERE question_follows.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrFollowNotFound
	}
	return domain.QuestionFollowFromRow(rows[0])
}

// FollowersForQuestionID returns the users following a question.
func (r *SQLFollowRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]domain.User, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+userColumns+`
		FROM users
		JOIN question_follows ON users.id = question_follows.user_id
		WHERE question_follows.question_id = ?
		ORDER BY users.id`, questionID)
	if err != nil {
		return nil, err
	}
	return domain.UsersFromRows(rows)
}

// FollowedQuestionsForUserID returns the questions a user follows.
func (r *SQLFollowRepository) FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]domain.Question, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		JOIN question_follows ON questions.id = question_follows.question_id
		WHERE question_follows.user_id = ?
		ORDER BY questions.id`, userID)
	if err != nil {
		return nil, err
	}
	return domain.QuestionsFromRows(rows)
}

// NumFollowersForQuestionID counts the follow rows of a question.
func (r *SQLFollowRepository) NumFollowersForQuestionID(ctx context.Context, questionID int64) (int64, error) {
	return countQuery(ctx, r.conn, "num_followers", `
		SELECT COUNT(*) AS num_followers
		FROM question_follows
		WHERE question_follows.question_id = ?`, questionID)
}

// MostFollowedQuestions returns up to n questions with the most followers,
// most followed first. Questions without followers are never returned.
func (r *SQLFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]domain.Question, error) {
	if n <= 0 {
		return []domain.Question{}, nil
	}
	rows, err := r.conn.Execute(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		JOIN question_follows ON questions.id = question_follows.question_id
		GROUP BY questions.id, questions.title, questions.body, questions.author_id
		ORDER BY COUNT(question_follows.id) DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	return domain.QuestionsFromRows(rows)
}

// Save inserts a new follow or updates an existing one.
func (r *SQLFollowRepository) Save(ctx context.Context, f *domain.QuestionFollow) error {
	if f.IsNew() {
		id, err := r.conn.Insert(ctx, `
			INSERT INTO question_follows (question_id, user_id)
			VALUES (?, ?)`, f.QuestionID, f.UserID)
		if err != nil {
			return err
		}
		f.ID = id
		return nil
	}

	affected, err := r.conn.Exec(ctx, `
		UPDATE question_follows
		SET question_id = ?, user_id = ?
		WHERE id = ?`, f.QuestionID, f.UserID, f.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

var _ FollowRepository = (*SQLFollowRepository)(nil)
