package repository

import (
	"context"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/pkg/database"
)

const replyColumns = "replies.id, replies.question_id, replies.reply_id, replies.user_id"

// SQLReplyRepository implements ReplyRepository with raw SQL over a Conn.
type SQLReplyRepository struct {
	conn  *database.Conn
	repos *Repositories
}

// FindByID retrieves a reply by ID.
func (r *SQLReplyRepository) FindByID(ctx context.Context, id int64) (*domain.Reply, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+replyColumns+`
		FROM replies
		WHERE replies.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrReplyNotFound
	}
	return domain.ReplyFromRow(rows[0])
}

// FindByQuestionID returns every reply on a question.
func (r *SQLReplyRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]domain.Reply, error) {
	return r.findMany(ctx, "replies.question_id = ?", questionID)
}

// FindByUserID returns every reply written by a user.
func (r *SQLReplyRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Reply, error) {
	return r.findMany(ctx, "replies.user_id = ?", userID)
}

// FindByReplyID returns the direct children of a reply.
func (r *SQLReplyRepository) FindByReplyID(ctx context.Context, parentID int64) ([]domain.Reply, error) {
	return r.findMany(ctx, "replies.reply_id = ?", parentID)
}

// cond is always a constant from this file; only the value is bound.
func (r *SQLReplyRepository) findMany(ctx context.Context, cond string, arg int64) ([]domain.Reply, error) {
	rows, err := r.conn.Execute(ctx, `
		SELECT `+replyColumns+`
		FROM replies
		WHERE `+cond+`
		ORDER BY replies.id`, arg)
	if err != nil {
		return nil, err
	}
	return domain.RepliesFromRows(rows)
}

// Author returns the user who wrote the reply.
func (r *SQLReplyRepository) Author(ctx context.Context, reply *domain.Reply) (*domain.User, error) {
	return r.repos.Users.FindByID(ctx, reply.UserID)
}

// Question returns the question the reply belongs to.
func (r *SQLReplyRepository) Question(ctx context.Context, reply *domain.Reply) (*domain.Question, error) {
	return r.repos.Questions.FindByID(ctx, reply.QuestionID)
}

// ParentReply returns the reply this one answers.
func (r *SQLReplyRepository) ParentReply(ctx context.Context, reply *domain.Reply) (*domain.Reply, error) {
	if reply.ReplyID == nil {
		return nil, ErrReplyNotFound
	}
	return r.FindByID(ctx, *reply.ReplyID)
}

// ChildReplies returns the replies that answer this one.
func (r *SQLReplyRepository) ChildReplies(ctx context.Context, reply *domain.Reply) ([]domain.Reply, error) {
	return r.FindByReplyID(ctx, reply.ID)
}

// Save inserts a new reply or updates an existing one.
func (r *SQLReplyRepository) Save(ctx context.Context, reply *domain.Reply) error {
	if reply.IsNew() {
		id, err := r.conn.Insert(ctx, `
			INSERT INTO replies (question_id, reply_id, user_id)
			VALUES (?, ?, ?)`, reply.QuestionID, reply.ParentArg(), reply.UserID)
		if err != nil {
			return err
		}
		reply.ID = id
		return nil
	}

	affected, err := r.conn.Exec(ctx, `
		UPDATE replies
		SET question_id = ?, reply_id = ?, user_id = ?
		WHERE id = ?`, reply.QuestionID, reply.ParentArg(), reply.UserID, reply.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReplyNotFound
	}
	return nil
}

var _ ReplyRepository = (*SQLReplyRepository)(nil)
