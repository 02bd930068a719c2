package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/qa-service/internal/domain"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
	"github.com/weiawesome/qa-service/pkg/response"
)

// GetUser handles GET /api/v1/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	response.Success(c, user)
}

// FindUserByName handles GET /api/v1/users?fname=&lname=.
func (h *Handler) FindUserByName(c *gin.Context) {
	fname, lname := c.Query("fname"), c.Query("lname")
	if fname == "" || lname == "" {
		response.BadRequest(c, "fname and lname are required")
		return
	}

	user, err := h.repos.Users.FindByName(c.Request.Context(), fname, lname)
	if err != nil {
		h.fail(c, err, "failed to find user")
		return
	}
	response.Success(c, user)
}

// CreateUser handles POST /api/v1/users.
func (h *Handler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()
	l := pkglog.Ctx(ctx)

	var req domain.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid create user request")
		response.BadRequest(c, err.Error())
		return
	}

	user := &domain.User{FName: req.FName, LName: req.LName}
	if err := h.repos.Users.Save(ctx, user); err != nil {
		h.fail(c, err, "failed to create user")
		return
	}
	response.Created(c, user)
}

// UpdateUser handles PUT /api/v1/users/:id.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, pkglog.FieldUserID)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var req domain.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := &domain.User{ID: id, FName: req.FName, LName: req.LName}
	if err := h.repos.Users.Save(ctx, user); err != nil {
		h.fail(c, err, "failed to update user")
		return
	}
	response.Success(c, user)
}

// AuthoredQuestions handles GET /api/v1/users/:id/questions.
func (h *Handler) AuthoredQuestions(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	questions, err := h.repos.Users.AuthoredQuestions(c.Request.Context(), user)
	if err != nil {
		h.fail(c, err, "failed to load authored questions")
		return
	}
	response.List(c, questions)
}

// AuthoredReplies handles GET /api/v1/users/:id/replies.
func (h *Handler) AuthoredReplies(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	replies, err := h.repos.Users.AuthoredReplies(c.Request.Context(), user)
	if err != nil {
		h.fail(c, err, "failed to load authored replies")
		return
	}
	response.List(c, replies)
}

// FollowedQuestions handles GET /api/v1/users/:id/followed_questions.
func (h *Handler) FollowedQuestions(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	questions, err := h.repos.Users.FollowedQuestions(c.Request.Context(), user)
	if err != nil {
		h.fail(c, err, "failed to load followed questions")
		return
	}
	response.List(c, questions)
}

// LikedQuestions handles GET /api/v1/users/:id/liked_questions.
func (h *Handler) LikedQuestions(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	questions, err := h.repos.Users.LikedQuestions(c.Request.Context(), user)
	if err != nil {
		h.fail(c, err, "failed to load liked questions")
		return
	}
	response.List(c, questions)
}

// AverageKarma handles GET /api/v1/users/:id/average_karma.
func (h *Handler) AverageKarma(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	karma, err := h.repos.Users.AverageKarma(c.Request.Context(), user)
	if err != nil {
		h.fail(c, err, "failed to compute average karma")
		return
	}
	response.Success(c, gin.H{"user_id": user.ID, "average_karma": karma})
}
