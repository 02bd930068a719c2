package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/qa-service/internal/domain"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
	"github.com/weiawesome/qa-service/pkg/response"
)

// GetQuestion handles GET /api/v1/questions/:id.
func (h *Handler) GetQuestion(c *gin.Context) {
	q, ok := h.loadQuestion(c)
	if !ok {
		return
	}
	response.Success(c, q)
}

// FindQuestionsByAuthor handles GET /api/v1/questions?author_id=.
func (h *Handler) FindQuestionsByAuthor(c *gin.Context) {
	authorID, present, ok := queryID(c, "author_id")
	if !ok {
		return
	}
	if !present {
		response.BadRequest(c, "author_id is required")
		return
	}

	questions, err := h.repos.Questions.FindByAuthorID(c.Request.Context(), authorID)
	if err != nil {
		h.fail(c, err, "failed to find questions")
		return
	}
	response.List(c, questions)
}

// CreateQuestion handles POST /api/v1/questions.
func (h *Handler) CreateQuestion(c *gin.Context) {
	ctx := c.Request.Context()
	l := pkglog.Ctx(ctx)

	var req domain.SaveQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid create question request")
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.repos.Users.FindByID(ctx, req.AuthorID); err != nil {
		h.fail(c, err, "failed to load author")
		return
	}

	q := &domain.Question{Title: req.Title, Body: req.Body, AuthorID: req.AuthorID}
	if err := h.repos.Questions.Save(ctx, q); err != nil {
		h.fail(c, err, "failed to create question")
		return
	}
	response.Created(c, q)
}

// UpdateQuestion handles PUT /api/v1/questions/:id.
func (h *Handler) UpdateQuestion(c *gin.Context) {
	id, ok := idParam(c, pkglog.FieldQuestionID)
	if !ok {
		return
	}

	var req domain.SaveQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	q, err := h.svc.UpdateQuestion(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, "failed to update question")
		return
	}
	response.Success(c, q)
}

// QuestionAuthor handles GET /api/v1/questions/:id/author.
func (h *Handler) QuestionAuthor(c *gin.Context) {
	q, ok := h.loadQuestion(c)
	if !ok {
		return
	}
	author, err := h.repos.Questions.Author(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err, "failed to load author")
		return
	}
	response.Success(c, author)
}

// QuestionReplies handles GET /api/v1/questions/:id/replies.
func (h *Handler) QuestionReplies(c *gin.Context) {
	q, ok := h.loadQuestion(c)
	if !ok {
		return
	}
	replies, err := h.repos.Questions.Replies(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err, "failed to load replies")
		return
	}
	response.List(c, replies)
}

// QuestionFollowers handles GET /api/v1/questions/:id/followers.
func (h *Handler) QuestionFollowers(c *gin.Context) {
	q, ok := h.loadQuestion(c)
	if !ok {
		return
	}
	users, err := h.repos.Questions.Followers(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err, "failed to load followers")
		return
	}
	response.List(c, users)
}

// QuestionLikers handles GET /api/v1/questions/:id/likers.
func (h *Handler) QuestionLikers(c *gin.Context) {
	q, ok := h.loadQuestion(c)
	if !ok {
		return
	}
	users, err := h.repos.Questions.Likers(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err, "failed to load likers")
		return
	}
	response.List(c, users)
}

// QuestionNumLikes handles GET /api/v1/questions/:id/num_likes.
func (h *Handler) QuestionNumLikes(c *gin.Context) {
	q, ok := h.loadQuestion(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	likes, err := h.repos.Questions.NumLikes(ctx, q)
	if err != nil {
		h.fail(c, err, "failed to count likes")
		return
	}
	followers, err := h.repos.Questions.NumFollowers(ctx, q)
	if err != nil {
		h.fail(c, err, "failed to count followers")
		return
	}
	response.Success(c, gin.H{"question_id": q.ID, "num_likes": likes, "num_followers": followers})
}

// QuestionThread handles GET /api/v1/questions/:id/thread.
func (h *Handler) QuestionThread(c *gin.Context) {
	id, ok := idParam(c, pkglog.FieldQuestionID)
	if !ok {
		return
	}
	thread, err := h.svc.QuestionThread(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to load question thread")
		return
	}
	response.Success(c, thread)
}

// MostFollowed handles GET /api/v1/questions/most_followed?n=.
func (h *Handler) MostFollowed(c *gin.Context) {
	n, ok := topN(c)
	if !ok {
		return
	}
	questions, err := h.repos.Questions.MostFollowed(c.Request.Context(), n)
	if err != nil {
		h.fail(c, err, "failed to rank questions")
		return
	}
	response.List(c, questions)
}

// MostLiked handles GET /api/v1/questions/most_liked?n=.
func (h *Handler) MostLiked(c *gin.Context) {
	n, ok := topN(c)
	if !ok {
		return
	}
	questions, err := h.repos.Questions.MostLiked(c.Request.Context(), n)
	if err != nil {
		h.fail(c, err, "failed to rank questions")
		return
	}
	response.List(c, questions)
}

// FollowQuestion handles POST /api/v1/questions/:id/follows.
func (h *Handler) FollowQuestion(c *gin.Context) {
	id, ok := idParam(c, pkglog.FieldQuestionID)
	if !ok {
		return
	}
	var req domain.UserRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	follow, err := h.svc.FollowQuestion(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.fail(c, err, "failed to follow question")
		return
	}
	response.Created(c, follow)
}

// LikeQuestion handles POST /api/v1/questions/:id/likes.
func (h *Handler) LikeQuestion(c *gin.Context) {
	id, ok := idParam(c, pkglog.FieldQuestionID)
	if !ok {
		return
	}
	var req domain.UserRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	like, err := h.svc.LikeQuestion(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.fail(c, err, "failed to like question")
		return
	}
	response.Created(c, like)
}
