package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/weiawesome/qa-service/internal/domain"
)

// ErrNotFound is wrapped by every single-entity lookup that matches no row.
var ErrNotFound = errors.New("record not found")

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
	ErrReplyNotFound    = fmt.Errorf("reply %w", ErrNotFound)
	ErrFollowNotFound   = fmt.Errorf("question follow %w", ErrNotFound)
	ErrLikeNotFound     = fmt.Errorf("question like %w", ErrNotFound)
)

// UserRepository defines lookup, relationship and persistence operations for users.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByName(ctx context.Context, fname, lname string) (*domain.User, error)
	AuthoredQuestions(ctx context.Context, user *domain.User) ([]domain.Question, error)
	AuthoredReplies(ctx context.Context, user *domain.User) ([]domain.Reply, error)
	FollowedQuestions(ctx context.Context, user *domain.User) ([]domain.Question, error)
	LikedQuestions(ctx context.Context, user *domain.User) ([]domain.Question, error)
	// AverageKarma is likes received per authored question, 0 with no questions.
	AverageKarma(ctx context.Context, user *domain.User) (float64, error)
	Save(ctx context.Context, user *domain.User) error
}

// QuestionRepository defines lookup, relationship, ranking and persistence
// operations for questions.
type QuestionRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Question, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]domain.Question, error)
	Author(ctx context.Context, q *domain.Question) (*domain.User, error)
	Replies(ctx context.Context, q *domain.Question) ([]domain.Reply, error)
	Followers(ctx context.Context, q *domain.Question) ([]domain.User, error)
	Likers(ctx context.Context, q *domain.Question) ([]domain.User, error)
	NumLikes(ctx context.Context, q *domain.Question) (int64, error)
	NumFollowers(ctx context.Context, q *domain.Question) (int64, error)
	MostFollowed(ctx context.Context, n int) ([]domain.Question, error)
	MostLiked(ctx context.Context, n int) ([]domain.Question, error)
	Save(ctx context.Context, q *domain.Question) error
}

// ReplyRepository defines lookup, tree traversal and persistence operations for replies.
type ReplyRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Reply, error)
	FindByQuestionID(ctx context.Context, questionID int64) ([]domain.Reply, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Reply, error)
	// FindByReplyID returns the direct children of the reply with parentID.
	FindByReplyID(ctx context.Context, parentID int64) ([]domain.Reply, error)
	Author(ctx context.Context, r *domain.Reply) (*domain.User, error)
	Question(ctx context.Context, r *domain.Reply) (*domain.Question, error)
	// ParentReply returns ErrReplyNotFound for a top-level reply.
	ParentReply(ctx context.Context, r *domain.Reply) (*domain.Reply, error)
	ChildReplies(ctx context.Context, r *domain.Reply) ([]domain.Reply, error)
	Save(ctx context.Context, r *domain.Reply) error
}

// FollowRepository defines operations on the question_follows join table.
type FollowRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.QuestionFollow, error)
	FollowersForQuestionID(ctx context.Context, questionID int64) ([]domain.User, error)
	FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]domain.Question, error)
	NumFollowersForQuestionID(ctx context.Context, questionID int64) (int64, error)
	MostFollowedQuestions(ctx context.Context, n int) ([]domain.Question, error)
	Save(ctx context.Context, f *domain.QuestionFollow) error
}

// LikeRepository defines operations on the question_likes join table.
type LikeRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.QuestionLike, error)
	LikersForQuestionID(ctx context.Context, questionID int64) ([]domain.User, error)
	NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error)
	LikedQuestionsForUserID(ctx context.Context, userID int64) ([]domain.Question, error)
	MostLikedQuestions(ctx context.Context, n int) ([]domain.Question, error)
	Save(ctx context.Context, l *domain.QuestionLike) error
}
