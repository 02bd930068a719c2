package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/internal/repository"
	"github.com/weiawesome/qa-service/internal/service"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
	"github.com/weiawesome/qa-service/pkg/response"
)

const defaultTopN = 10

// Handler handles HTTP requests for the Q&A service.
type Handler struct {
	repos *repository.Repositories
	svc   service.QAService
}

// NewHandler creates a new HTTP handler.
func NewHandler(repos *repository.Repositories, svc service.QAService) *Handler {
	return &Handler{
		repos: repos,
		svc:   svc,
	}
}

// RegisterRoutes registers all routes onto the Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.GET("", h.FindUserByName)
			users.POST("", h.CreateUser)
			users.GET("/:id", h.GetUser)
			users.PUT("/:id", h.UpdateUser)
			users.GET("/:id/questions", h.AuthoredQuestions)
			users.GET("/:id/replies", h.AuthoredReplies)
			users.GET("/:id/followed_questions", h.FollowedQuestions)
			users.GET("/:id/liked_questions", h.LikedQuestions)
			users.GET("/:id/average_karma", h.AverageKarma)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", h.FindQuestionsByAuthor)
			questions.POST("", h.CreateQuestion)
			questions.GET("/most_followed", h.MostFollowed)
			questions.GET("/most_liked", h.MostLiked)
			questions.GET("/:id", h.GetQuestion)
			questions.PUT("/:id", h.UpdateQuestion)
			questions.GET("/:id/author", h.QuestionAuthor)
			questions.GET("/:id/replies", h.QuestionReplies)
			questions.GET("/:id/followers", h.QuestionFollowers)
			questions.GET("/:id/likers", h.QuestionLikers)
			questions.GET("/:id/num_likes", h.QuestionNumLikes)
			questions.GET("/:id/thread", h.QuestionThread)
			questions.POST("/:id/follows", h.FollowQuestion)
			questions.POST("/:id/likes", h.LikeQuestion)
		}

		replies := api.Group("/replies")
		{
			replies.GET("", h.FindReplies)
			replies.POST("", h.CreateReply)
			replies.GET("/:id", h.GetReply)
			replies.PUT("/:id", h.UpdateReply)
			replies.GET("/:id/children", h.ChildReplies)
			replies.GET("/:id/parent", h.ParentReply)
		}
	}
}

// fail maps an error onto a response. Not-found errors become 404, a bad
// parent reply becomes 422, everything else is logged and 500.
func (h *Handler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrParentMismatch), errors.Is(err, service.ErrReplyCycle):
		response.Unprocessable(c, err.Error())
	default:
		l := pkglog.Ctx(c.Request.Context())
		l.Error().Err(err).Msg(msg)
		response.InternalError(c, msg)
	}
}

// idParam parses the :id path parameter and attaches it to the request logger.
func idParam(c *gin.Context, field string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	c.Request = c.Request.WithContext(pkglog.WithInt64(c.Request.Context(), field, id))
	return id, true
}

// queryID parses an optional positive integer query parameter.
func queryID(c *gin.Context, key string) (id int64, present bool, ok bool) {
	raw, present := c.GetQuery(key)
	if !present {
		return 0, false, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+key)
		return 0, true, false
	}
	return id, true, true
}

// topN parses ?n=, defaulting to defaultTopN. Negative values are passed
// through and yield an empty ranking.
func topN(c *gin.Context) (int, bool) {
	raw := c.Query("n")
	if raw == "" {
		return defaultTopN, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, "invalid n")
		return 0, false
	}
	return n, true
}

func (h *Handler) loadUser(c *gin.Context) (*domain.User, bool) {
	id, ok := idParam(c, pkglog.FieldUserID)
	if !ok {
		return nil, false
	}
	user, err := h.repos.Users.FindByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to load user")
		return nil, false
	}
	return user, true
}

func (h *Handler) loadQuestion(c *gin.Context) (*domain.Question, bool) {
	id, ok := idParam(c, pkglog.FieldQuestionID)
	if !ok {
		return nil, false
	}
	q, err := h.repos.Questions.FindByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to load question")
		return nil, false
	}
	return q, true
}

func (h *Handler) loadReply(c *gin.Context) (*domain.Reply, bool) {
	id, ok := idParam(c, pkglog.FieldReplyID)
	if !ok {
		return nil, false
	}
	reply, err := h.repos.Replies.FindByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to load reply")
		return nil, false
	}
	return reply, true
}
