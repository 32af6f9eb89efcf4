package article

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	articlehttp "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/delivery/http"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/repository/postgres"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/usecase/buissines"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/kafka"
)

// Module provides article domain dependencies
var Module = fx.Module(
	"article",
	fx.Provide(
		postgres.NewArticleRepository,
		postgres.NewChannelReader,
		postgres.NewAdminReader,
		provideEventProducer,
		buissines.NewUseCase,
		articlehttp.NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func provideEventProducer(p *kafka.Producer) deps.EventProducer {
	return p
}

func registerRoutes(h *articlehttp.Handler, engine *gin.Engine) {
	h.Register(engine)
}
