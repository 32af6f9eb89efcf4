package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/usecase/buissines"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/httpserver"
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

// Handler exposes the articles REST surface
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new article HTTP handler
func NewHandler(uc *buissines.UseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: pkgerrors.NewMapper(),
		logger: logger.With().Str("handler", "articles").Logger(),
	}
}

// Register registers article routes
func (h *Handler) Register(r *gin.Engine) {
	articles := r.Group("/articles")
	{
		articles.GET("", h.list)
		articles.GET("/:id", h.get)
		articles.POST("", h.submit)
		articles.PUT("/:id/moderate", h.moderate)
	}
}

func (h *Handler) list(c *gin.Context) {
	var req dto.ListArticlesRequest
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

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	item, err := h.uc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) submit(c *gin.Context) {
	var req dto.SubmitArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.Submit(c.Request.Context(), httpserver.ActingUser(c), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) moderate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req dto.ModerateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.Moderate(c.Request.Context(), httpserver.ActingUser(c), uint(id), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}
