package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/usecase/buissines"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/httpserver"
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

// Handler exposes the channels REST surface
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new channel HTTP handler
func NewHandler(uc *buissines.UseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: pkgerrors.NewMapper(),
		logger: logger.With().Str("handler", "channels").Logger(),
	}
}

// Register registers channel routes
func (h *Handler) Register(r *gin.Engine) {
	channels := r.Group("/channels")
	{
		channels.GET("", h.list)
		channels.POST("/create", h.create)
		channels.PUT("/verify", h.verify)
	}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.Create(c.Request.Context(), httpserver.ActingUser(c), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) verify(c *gin.Context) {
	var req dto.VerifyChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.Verify(c.Request.Context(), httpserver.ActingUser(c), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}
