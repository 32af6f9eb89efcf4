package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/usecase/buissines"
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

// Handler exposes the auth REST surface
type Handler struct {
	uc     *buissines.UseCase
	mapper *pkgerrors.Mapper
	logger zerolog.Logger
}

// NewHandler creates a new auth HTTP handler
func NewHandler(uc *buissines.UseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		mapper: pkgerrors.NewMapper(),
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

// Register registers auth routes
func (h *Handler) Register(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/telegram", h.login)
		auth.POST("/request-admin-code", h.requestAdminCode)
		auth.POST("/verify-admin-code", h.verifyAdminCode)
	}
}

func (h *Handler) login(c *gin.Context) {
	var req dto.TelegramLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.LoginWithTelegram(c.Request.Context(), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) requestAdminCode(c *gin.Context) {
	var req dto.RequestAdminCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.RequestAdminCode(c.Request.Context(), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) verifyAdminCode(c *gin.Context) {
	var req dto.VerifyAdminCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.uc.VerifyAdminCode(c.Request.Context(), &req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}
