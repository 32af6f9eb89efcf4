package channel

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	channelhttp "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/delivery/http"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/repository/postgres"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/usecase/buissines"
)

// Module provides channel domain dependencies
var Module = fx.Module(
	"channel",
	fx.Provide(
		postgres.NewChannelRepository,
		postgres.NewAdminReader,
		buissines.NewUseCase,
		channelhttp.NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(h *channelhttp.Handler, engine *gin.Engine) {
	h.Register(engine)
}
