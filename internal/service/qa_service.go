package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/internal/repository"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
)

var (
	ErrParentMismatch = errors.New("parent reply belongs to a different question")
	ErrReplyCycle     = errors.New("reply cannot be its own ancestor")
)

// qaService implements QAService.
type qaService struct {
	repos *repository.Repositories
}

// NewQAService creates a new QAService instance.
func NewQAService(repos *repository.Repositories) QAService {
	return &qaService{repos: repos}
}

// QuestionThread loads the question first, then resolves the rest concurrently.
// A missing author is left nil rather than failing the whole thread.
func (s *qaService) QuestionThread(ctx context.Context, questionID int64) (*domain.QuestionThread, error) {
	l := pkglog.Ctx(ctx)

	q, err := s.repos.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	thread := &domain.QuestionThread{Question: *q}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		author, err := s.repos.Questions.Author(gctx, q)
		if errors.Is(err, repository.ErrNotFound) {
			l.Warn().Int64(pkglog.FieldQuestionID, q.ID).Int64(pkglog.FieldAuthorID, q.AuthorID).Msg("question author missing")
			return nil
		}
		thread.Author = author
		return err
	})
	g.Go(func() error {
		replies, err := s.repos.Questions.Replies(gctx, q)
		thread.Replies = replies
		return err
	})
	g.Go(func() error {
		followers, err := s.repos.Questions.Followers(gctx, q)
		thread.Followers = followers
		return err
	})
	g.Go(func() error {
		likers, err := s.repos.Questions.Likers(gctx, q)
		thread.Likers = likers
		return err
	})
	g.Go(func() error {
		n, err := s.repos.Questions.NumLikes(gctx, q)
		thread.NumLikes = n
		return err
	})

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Int64(pkglog.FieldQuestionID, questionID).Msg("failed to load question thread")
		return nil, err
	}
	return thread, nil
}

// FollowQuestion records that userID follows questionID.
func (s *qaService) FollowQuestion(ctx context.Context, questionID, userID int64) (*domain.QuestionFollow, error) {
	l := pkglog.Ctx(ctx)

	if err := s.requireQuestionAndUser(ctx, questionID, userID); err != nil {
		return nil, err
	}

	f := &domain.QuestionFollow{QuestionID: questionID, UserID: userID}
	if err := s.repos.Follows.Save(ctx, f); err != nil {
		l.Error().Err(err).
			Int64(pkglog.FieldQuestionID, questionID).
			Int64(pkglog.FieldUserID, userID).
			Msg("failed to follow question")
		return nil, err
	}
	return f, nil
}

// LikeQuestion records that userID likes questionID.
func (s *qaService) LikeQuestion(ctx context.Context, questionID, userID int64) (*domain.QuestionLike, error) {
	l := pkglog.Ctx(ctx)

	if err := s.requireQuestionAndUser(ctx, questionID, userID); err != nil {
		return nil, err
	}

	like := &domain.QuestionLike{QuestionID: questionID, UserID: userID}
	if err := s.repos.Likes.Save(ctx, like); err != nil {
		l.Error().Err(err).
			Int64(pkglog.FieldQuestionID, questionID).
			Int64(pkglog.FieldUserID, userID).
			Msg("failed to like question")
		return nil, err
	}
	return like, nil
}

// PostReply saves a new reply.
func (s *qaService) PostReply(ctx context.Context, req *domain.SaveReplyRequest) (*domain.Reply, error) {
	l := pkglog.Ctx(ctx)

	if err := s.checkReply(ctx, 0, req); err != nil {
		return nil, err
	}

	reply := &domain.Reply{
		QuestionID: req.QuestionID,
		ReplyID:    req.ReplyID,
		UserID:     req.UserID,
	}
	if err := s.repos.Replies.Save(ctx, reply); err != nil {
		l.Error().Err(err).Int64(pkglog.FieldQuestionID, req.QuestionID).Msg("failed to save reply")
		return nil, err
	}
	return reply, nil
}

// UpdateReply rewrites an existing reply.
func (s *qaService) UpdateReply(ctx context.Context, id int64, req *domain.SaveReplyRequest) (*domain.Reply, error) {
	l := pkglog.Ctx(ctx)

	if _, err := s.repos.Replies.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkReply(ctx, id, req); err != nil {
		return nil, err
	}

	reply := &domain.Reply{
		ID:         id,
		QuestionID: req.QuestionID,
		ReplyID:    req.ReplyID,
		UserID:     req.UserID,
	}
	if err := s.repos.Replies.Save(ctx, reply); err != nil {
		l.Error().Err(err).Int64(pkglog.FieldReplyID, id).Msg("failed to update reply")
		return nil, err
	}
	return reply, nil
}

// UpdateQuestion rewrites an existing question.
func (s *qaService) UpdateQuestion(ctx context.Context, id int64, req *domain.SaveQuestionRequest) (*domain.Question, error) {
	l := pkglog.Ctx(ctx)

	if _, err := s.repos.Users.FindByID(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	q := &domain.Question{ID: id, Title: req.Title, Body: req.Body, AuthorID: req.AuthorID}
	if err := s.repos.Questions.Save(ctx, q); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l.Error().Err(err).Int64(pkglog.FieldQuestionID, id).Msg("failed to update question")
		}
		return nil, err
	}
	return q, nil
}

// checkReply validates req for reply id, 0 for a reply not saved yet. The
// parent must sit on the same question, and walking up from it must never
// reach id.
func (s *qaService) checkReply(ctx context.Context, id int64, req *domain.SaveReplyRequest) error {
	if err := s.requireQuestionAndUser(ctx, req.QuestionID, req.UserID); err != nil {
		return err
	}
	if req.ReplyID == nil {
		return nil
	}

	parent, err := s.repos.Replies.FindByID(ctx, *req.ReplyID)
	if err != nil {
		return err
	}
	if parent.QuestionID != req.QuestionID {
		return ErrParentMismatch
	}
	if id == 0 {
		return nil
	}

	seen := map[int64]bool{}
	for cur := parent; ; {
		if cur.ID == id {
			return ErrReplyCycle
		}
		if cur.ReplyID == nil || seen[cur.ID] {
			return nil
		}
		seen[cur.ID] = true
		next, err := s.repos.Replies.FindByID(ctx, *cur.ReplyID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		cur = next
	}
}

func (s *qaService) requireQuestionAndUser(ctx context.Context, questionID, userID int64) error {
	if _, err := s.repos.Questions.FindByID(ctx, questionID); err != nil {
		return err
	}
	_, err := s.repos.Users.FindByID(ctx, userID)
	return err
}
