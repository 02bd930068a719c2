package domain

import (
	"fmt"

	"github.com/weiawesome/qa-service/pkg/database"
)

// User represents a user entity. ID is zero until the user is saved.
type User struct {
	ID    int64  `json:"id"`
	FName string `json:"fname"`
	LName string `json:"lname"`
}

// IsNew reports whether the user has not been persisted yet.
func (u *User) IsNew() bool { return u.ID == 0 }

// UserFromRow decodes a users row. Columns other than id, fname and lname are ignored.
func UserFromRow(r database.Row) (*User, error) {
	id, err := r.Int64("id")
	if err != nil {
		return nil, fmt.Errorf("%w: user: %w", ErrInvalidRow, err)
	}
	fname, err := r.OptString("fname")
	if err != nil {
		return nil, fmt.Errorf("%w: user: %w", ErrInvalidRow, err)
	}
	lname, err := r.OptString("lname")
	if err != nil {
		return nil, fmt.Errorf("%w: user: %w", ErrInvalidRow, err)
	}
	return &User{ID: id, FName: fname, LName: lname}, nil
}

// UsersFromRows decodes every row into a User.
func UsersFromRows(rows []database.Row) ([]User, error) {
	return decodeAll(rows, UserFromRow)
}

// SaveUserRequest is the body for creating or updating a user.
type SaveUserRequest struct {
	FName string `json:"fname" binding:"required"`
	LName string `json:"lname" binding:"required"`
}
