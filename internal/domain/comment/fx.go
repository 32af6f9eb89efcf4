package comment

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	commenthttp "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/delivery/http"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/repository/postgres"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/usecase/buissines"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/kafka"
)

// Module provides comment domain dependencies
var Module = fx.Module(
	"comment",
	fx.Provide(
		postgres.NewCommentRepository,
		postgres.NewArticleReader,
		postgres.NewAdminReader,
		provideEventProducer,
		buissines.NewUseCase,
		commenthttp.NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func provideEventProducer(p *kafka.Producer) deps.EventProducer {
	return p
}

func registerRoutes(h *commenthttp.Handler, engine *gin.Engine) {
	h.Register(engine)
}
