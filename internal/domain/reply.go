package domain

import (
	"fmt"

	"github.com/weiawesome/qa-service/pkg/database"
)

// Reply represents a reply to a question. ReplyID points at the parent reply
// and is nil for a top-level reply.
type Reply struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ReplyID    *int64 `json:"reply_id"`
	UserID     int64  `json:"user_id"`
}

// IsNew reports whether the reply has not been persisted yet.
func (r *Reply) IsNew() bool { return r.ID == 0 }

// ParentArg returns the parent reply id as a bind argument, nil for NULL.
func (r *Reply) ParentArg() any {
	if r.ReplyID == nil {
		return nil
	}
	return *r.ReplyID
}

// ReplyFromRow decodes a replies row.
func ReplyFromRow(row database.Row) (*Reply, error) {
	var (
		r   Reply
		err error
	)
	if r.ID, err = row.Int64("id"); err != nil {
		return nil, fmt.Errorf("%w: reply: %w", ErrInvalidRow, err)
	}
	if r.QuestionID, err = row.OptInt64("question_id"); err != nil {
		return nil, fmt.Errorf("%w: reply: %w", ErrInvalidRow, err)
	}
	if r.ReplyID, err = row.NullInt64("reply_id"); err != nil {
		return nil, fmt.Errorf("%w: reply: %w", ErrInvalidRow, err)
	}
	if r.UserID, err = row.OptInt64("user_id"); err != nil {
		return nil, fmt.Errorf("%w: reply: %w", ErrInvalidRow, err)
	}
	return &r, nil
}

// RepliesFromRows decodes every row into a Reply.
func RepliesFromRows(rows []database.Row) ([]Reply, error) {
	return decodeAll(rows, ReplyFromRow)
}

// SaveReplyRequest is the body for creating or updating a reply.
type SaveReplyRequest struct {
	QuestionID int64  `json:"question_id" binding:"required"`
	ReplyID    *int64 `json:"reply_id"`
	UserID     int64  `json:"user_id" binding:"required"`
}
