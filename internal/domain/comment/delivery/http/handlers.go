package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/usecase/buissines"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/httpserver"
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

// Handler exposes the comments REST surface
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new comment HTTP handler
func NewHandler(uc *buissines.UseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: pkgerrors.NewMapper(),
		logger: logger.With().Str("handler", "comments").Logger(),
	}
}

// Register registers comment routes
func (h *Handler) Register(r *gin.Engine) {
	comments := r.Group("/comments")
	{
		comments.GET("", h.list)
		comments.POST("", h.add)
		comments.PUT("/moderate", h.moderate)
	}
}

func (h *Handler) list(c *gin.Context) {
	var req dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	items, err := h.uc.List(c.Request.Context(), httpserver.ActingUser(c), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) add(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.Add(c.Request.Context(), httpserver.ActingUser(c), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) moderate(c *gin.Context) {
	var req dto.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.Moderate(c.Request.Context(), httpserver.ActingUser(c), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}
