package domain

import (
	"fmt"

	"github.com/weiawesome/qa-service/pkg/database"
)

// QuestionFollow records that a user follows a question.
type QuestionFollow struct {
	ID         int64 `json:"id"`
	QuestionID int64 `json:"question_id"`
	UserID     int64 `json:"user_id"`
}

// IsNew reports whether the follow has not been persisted yet.
func (f *QuestionFollow) IsNew() bool { return f.ID == 0 }

// QuestionFollowFromRow decodes a question_follows row.
func QuestionFollowFromRow(r database.Row) (*QuestionFollow, error) {
	var (
		f   QuestionFollow
		err error
	)
	if f.ID, err = r.Int64("id"); err != nil {
		return nil, fmt.Errorf("%w: question follow: %w", ErrInvalidRow, err)
	}
	if f.QuestionID, err = r.OptInt64("question_id"); err != nil {
		return nil, fmt.Errorf("%w: question follow: %w", ErrInvalidRow, err)
	}
	if f.UserID, err = r.OptInt64("user_id"); err != nil {
		return nil, fmt.Errorf("%w: question follow: %w", ErrInvalidRow, err)
	}
	return &f, nil
}

// QuestionLike records that a user likes a question.
type QuestionLike struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	QuestionID int64 `json:"question_id"`
}

// IsNew reports whether the like has not been persisted yet.
func (l *QuestionLike) IsNew() bool { return l.ID == 0 }

// QuestionLikeFromRow decodes a question_likes row.
func QuestionLikeFromRow(r database.Row) (*QuestionLike, error) {
	var (
		l   QuestionLike
		err error
	)
	if l.ID, err = r.Int64("id"); err != nil {
		return nil, fmt.Errorf("%w: question like: %w", ErrInvalidRow, err)
	}
	if l.UserID, err = r.OptInt64("user_id"); err != nil {
		return nil, fmt.Errorf("%w: question like: %w", ErrInvalidRow, err)
	}
	if l.QuestionID, err = r.OptInt64("question_id"); err != nil {
		return nil, fmt.Errorf("%w: question like: %w", ErrInvalidRow, err)
	}
	return &l, nil
}

// UserRefRequest is the body for follow and like requests.
type UserRefRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}
