package service

import (
	"context"

	"github.com/weiawesome/qa-service/internal/domain"
)

// QAService composes repository calls that span several entities.
type QAService interface {
	// QuestionThread loads a question together with its author, replies,
	// followers, likers and like count.
	QuestionThread(ctx context.Context, questionID int64) (*domain.QuestionThread, error)
	FollowQuestion(ctx context.Context, questionID, userID int64) (*domain.QuestionFollow, error)
	LikeQuestion(ctx context.Context, questionID, userID int64) (*domain.QuestionLike, error)
	// PostReply saves a new reply after checking its question, author and parent exist.
	PostReply(ctx context.Context, req *domain.SaveReplyRequest) (*domain.Reply, error)
	// UpdateReply rewrites reply id with the same checks as PostReply and
	// refuses a parent that would make the reply its own ancestor.
	UpdateReply(ctx context.Context, id int64, req *domain.SaveReplyRequest) (*domain.Reply, error)
	// UpdateQuestion rewrites a question after checking its author exists.
	UpdateQuestion(ctx context.Context, id int64, req *domain.SaveQuestionRequest) (*domain.Question, error)
}
