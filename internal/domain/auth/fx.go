package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	authhttp "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/delivery/http"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/repository/postgres"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/usecase/buissines"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/telegram"
)

// Module provides auth domain dependencies
var Module = fx.Module(
	"auth",
	fx.Provide(
		postgres.NewUserRepository,
		postgres.NewAdminCodeRepository,
		provideCodeSender,
		buissines.NewUseCase,
		authhttp.NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func provideCodeSender(bot *telegram.Bot) deps.CodeSender {
	return bot
}

func registerRoutes(h *authhttp.Handler, engine *gin.Engine) {
	h.Register(engine)
}
