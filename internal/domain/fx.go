package domain

import (
	"go.uber.org/fx"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment"
)

// Module aggregates all domain modules
var Module = fx.Module(
	"domain",
	auth.Module,
	channel.Module,
	article.Module,
	comment.Module,
)
