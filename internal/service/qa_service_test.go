package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/internal/repository"
	"github.com/weiawesome/qa-service/pkg/database"
)

func newTestService(t *testing.T) (QAService, *repository.Repositories) {
	t.Helper()

	db, err := database.New(&database.Config{
		Driver:   database.DriverSQLite,
		FilePath: filepath.Join(t.TempDir(), "qa.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db, domain.Models()...))

	repos := repository.NewRepositories(database.NewConn(db, database.DriverSQLite, zerolog.Nop()))
	return NewQAService(repos), repos
}

type fixture struct {
	ada, alan *domain.User
	question  *domain.Question
}

func seedFixture(t *testing.T, repos *repository.Repositories) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{
		ada:  &domain.User{FName: "Ada", LName: "Lovelace"},
		alan: &domain.User{FName: "Alan", LName: "Turing"},
	}
	require.NoError(t, repos.Users.Save(ctx, f.ada))
	require.NoError(t, repos.Users.Save(ctx, f.alan))

	f.question = &domain.Question{Title: "Engine", Body: "Can it compose?", AuthorID: f.ada.ID}
	require.NoError(t, repos.Questions.Save(ctx, f.question))
	return f
}

func TestQAService_QuestionThread(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	f := seedFixture(t, repos)

	_, err := svc.FollowQuestion(ctx, f.question.ID, f.alan.ID)
	require.NoError(t, err)
	_, err = svc.LikeQuestion(ctx, f.question.ID, f.alan.ID)
	require.NoError(t, err)
	_, err = svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: f.question.ID, UserID: f.alan.ID})
	require.NoError(t, err)

	thread, err := svc.QuestionThread(ctx, f.question.ID)
	require.NoError(t, err)
	assert.Equal(t, *f.question, thread.Question)
	require.NotNil(t, thread.Author)
	assert.Equal(t, f.ada.ID, thread.Author.ID)
	assert.Len(t, thread.Replies, 1)
	assert.Equal(t, []domain.User{*f.alan}, thread.Followers)
	assert.Equal(t, []domain.User{*f.alan}, thread.Likers)
	assert.Equal(t, int64(1), thread.NumLikes)
}

func TestQAService_QuestionThreadMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.QuestionThread(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)
}

func TestQAService_QuestionThreadMissingAuthor(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)

	q := &domain.Question{Title: "Orphan", Body: "No author", AuthorID: 99}
	require.NoError(t, repos.Questions.Save(ctx, q))

	thread, err := svc.QuestionThread(ctx, q.ID)
	require.NoError(t, err)
	assert.Nil(t, thread.Author)
	assert.Empty(t, thread.Replies)
}

func TestQAService_FollowAndLikeRequireEntities(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	f := seedFixture(t, repos)

	_, err := svc.FollowQuestion(ctx, 404, f.alan.ID)
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)

	_, err = svc.LikeQuestion(ctx, f.question.ID, 404)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	like, err := svc.LikeQuestion(ctx, f.question.ID, f.ada.ID)
	require.NoError(t, err)
	assert.NotZero(t, like.ID)
}

func TestQAService_PostReply(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	f := seedFixture(t, repos)

	top, err := svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: f.question.ID, UserID: f.alan.ID})
	require.NoError(t, err)
	assert.Nil(t, top.ReplyID)

	child, err := svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &top.ID, UserID: f.ada.ID})
	require.NoError(t, err)
	require.NotNil(t, child.ReplyID)
	assert.Equal(t, top.ID, *child.ReplyID)

	missing := int64(404)
	_, err = svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &missing, UserID: f.ada.ID})
	assert.ErrorIs(t, err, repository.ErrReplyNotFound)

	other := &domain.Question{Title: "Other", Body: "Other", AuthorID: f.alan.ID}
	require.NoError(t, repos.Questions.Save(ctx, other))
	_, err = svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: other.ID, ReplyID: &top.ID, UserID: f.ada.ID})
	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestQAService_UpdateReply(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	f := seedFixture(t, repos)

	top, err := svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: f.question.ID, UserID: f.alan.ID})
	require.NoError(t, err)
	child, err := svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &top.ID, UserID: f.ada.ID})
	require.NoError(t, err)
	grandchild, err := svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &child.ID, UserID: f.alan.ID})
	require.NoError(t, err)

	other := &domain.Question{Title: "Other", Body: "Other", AuthorID: f.alan.ID}
	require.NoError(t, repos.Questions.Save(ctx, other))
	elsewhere, err := svc.PostReply(ctx, &domain.SaveReplyRequest{QuestionID: other.ID, UserID: f.ada.ID})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      int64
		req     domain.SaveReplyRequest
		wantErr error
	}{
		{"parent on another question", top.ID, domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &elsewhere.ID, UserID: f.alan.ID}, ErrParentMismatch},
		{"own parent", top.ID, domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &top.ID, UserID: f.alan.ID}, ErrReplyCycle},
		{"descendant as parent", top.ID, domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &grandchild.ID, UserID: f.alan.ID}, ErrReplyCycle},
		{"unknown question", top.ID, domain.SaveReplyRequest{QuestionID: 99, UserID: f.alan.ID}, repository.ErrQuestionNotFound},
		{"unknown user", top.ID, domain.SaveReplyRequest{QuestionID: f.question.ID, UserID: 99}, repository.ErrUserNotFound},
		{"unknown reply", 99, domain.SaveReplyRequest{QuestionID: f.question.ID, UserID: f.alan.ID}, repository.ErrReplyNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateReply(ctx, tt.id, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	stored, err := repos.Replies.FindByID(ctx, top.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ReplyID, "rejected updates leave the row alone")

	moved, err := svc.UpdateReply(ctx, grandchild.ID, &domain.SaveReplyRequest{QuestionID: f.question.ID, ReplyID: &top.ID, UserID: f.ada.ID})
	require.NoError(t, err)
	assert.Equal(t, grandchild.ID, moved.ID)

	children, err := repos.Replies.ChildReplies(ctx, top)
	require.NoError(t, err)
	assert.Len(t, children, 2)
}

func TestQAService_UpdateQuestion(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	f := seedFixture(t, repos)

	_, err := svc.UpdateQuestion(ctx, f.question.ID, &domain.SaveQuestionRequest{Title: "T", Body: "B", AuthorID: 99})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = svc.UpdateQuestion(ctx, 99, &domain.SaveQuestionRequest{Title: "T", Body: "B", AuthorID: f.ada.ID})
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)

	q, err := svc.UpdateQuestion(ctx, f.question.ID, &domain.SaveQuestionRequest{Title: "Engine", Body: "Does it compose?", AuthorID: f.alan.ID})
	require.NoError(t, err)

	stored, err := repos.Questions.FindByID(ctx, f.question.ID)
	require.NoError(t, err)
	assert.Equal(t, q, stored)
}
