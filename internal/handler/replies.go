package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/qa-service/internal/domain"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
	"github.com/weiawesome/qa-service/pkg/response"
)

// GetReply handles GET /api/v1/replies/:id.
func (h *Handler) GetReply(c *gin.Context) {
	reply, ok := h.loadReply(c)
	if !ok {
		return
	}
	response.Success(c, reply)
}

// FindReplies handles GET /api/v1/replies?question_id= and ?user_id=.
func (h *Handler) FindReplies(c *gin.Context) {
	ctx := c.Request.Context()

	questionID, byQuestion, ok := queryID(c, "question_id")
	if !ok {
		return
	}
	userID, byUser, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	var (
		replies []domain.Reply
		err     error
	)
	switch {
	case byQuestion && byUser:
		response.BadRequest(c, "pass either question_id or user_id, not both")
		return
	case byQuestion:
		replies, err = h.repos.Replies.FindByQuestionID(ctx, questionID)
	case byUser:
		replies, err = h.repos.Replies.FindByUserID(ctx, userID)
	default:
		response.BadRequest(c, "question_id or user_id is required")
		return
	}
	if err != nil {
		h.fail(c, err, "failed to find replies")
		return
	}
	response.List(c, replies)
}

// CreateReply handles POST /api/v1/replies.
func (h *Handler) CreateReply(c *gin.Context) {
	ctx := c.Request.Context()
	l := pkglog.Ctx(ctx)

	var req domain.SaveReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid create reply request")
		response.BadRequest(c, err.Error())
		return
	}

	reply, err := h.svc.PostReply(ctx, &req)
	if err != nil {
		h.fail(c, err, "failed to create reply")
		return
	}
	response.Created(c, reply)
}

// UpdateReply handles PUT /api/v1/replies/:id.
func (h *Handler) UpdateReply(c *gin.Context) {
	id, ok := idParam(c, pkglog.FieldReplyID)
	if !ok {
		return
	}

	var req domain.SaveReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reply, err := h.svc.UpdateReply(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, "failed to update reply")
		return
	}
	response.Success(c, reply)
}

// ChildReplies handles GET /api/v1/replies/:id/children.
func (h *Handler) ChildReplies(c *gin.Context) {
	reply, ok := h.loadReply(c)
	if !ok {
		return
	}
	children, err := h.repos.Replies.ChildReplies(c.Request.Context(), reply)
	if err != nil {
		h.fail(c, err, "failed to load child replies")
		return
	}
	response.List(c, children)
}

// ParentReply handles GET /api/v1/replies/:id/parent.
func (h *Handler) ParentReply(c *gin.Context) {
	reply, ok := h.loadReply(c)
	if !ok {
		return
	}
	parent, err := h.repos.Replies.ParentReply(c.Request.Context(), reply)
	if err != nil {
		h.fail(c, err, "failed to load parent reply")
		return
	}
	response.Success(c, parent)
}
