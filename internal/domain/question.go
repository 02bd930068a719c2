package domain

import (
	"fmt"

	"github.com/weiawesome/qa-service/pkg/database"
)

// Question represents a question entity.
type Question struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	AuthorID int64  `json:"author_id"`
}

// IsNew reports whether the question has not been persisted yet.
func (q *Question) IsNew() bool { return q.ID == 0 }

// QuestionFromRow decodes a questions row.
func QuestionFromRow(r database.Row) (*Question, error) {
	var (
		q   Question
		err error
	)
	if q.ID, err = r.Int64("id"); err != nil {
		return nil, fmt.Errorf("%w: question: %w", ErrInvalidRow, err)
	}
	if q.Title, err = r.OptString("title"); err != nil {
		return nil, fmt.Errorf("%w: question: %w", ErrInvalidRow, err)
	}
	if q.Body, err = r.OptString("body"); err != nil {
		return nil, fmt.Errorf("%w: question: %w", ErrInvalidRow, err)
	}
	if q.AuthorID, err = r.OptInt64("author_id"); err != nil {
		return nil, fmt.Errorf("%w: question: %w", ErrInvalidRow, err)
	}
	return &q, nil
}

// QuestionsFromRows decodes every row into a Question.
func QuestionsFromRows(rows []database.Row) ([]Question, error) {
	return decodeAll(rows, QuestionFromRow)
}

// SaveQuestionRequest is the body for creating or updating a question.
type SaveQuestionRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	AuthorID int64  `json:"author_id" binding:"required"`
}

// QuestionThread is a question with everything hanging off it.
type QuestionThread struct {
	Question  Question `json:"question"`
	Author    *User    `json:"author,omitempty"`
	Replies   []Reply  `json:"replies"`
	Followers []User   `json:"followers"`
	Likers    []User   `json:"likers"`
	NumLikes  int64    `json:"num_likes"`
}
