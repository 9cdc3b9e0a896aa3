package poster

import (
	"github.com/smallbiznis/reviewqr/internal/config"
	"github.com/smallbiznis/reviewqr/internal/observability/metrics"
	postercache "github.com/smallbiznis/reviewqr/internal/poster/cache"
	"github.com/smallbiznis/reviewqr/internal/poster/render"
	"github.com/smallbiznis/reviewqr/internal/poster/service"
	postertemplate "github.com/smallbiznis/reviewqr/internal/poster/template"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("poster.service",
	fx.Provide(postertemplate.NewRegistry),
	fx.Provide(newRenderer),
	fx.Provide(newFileCache),
	fx.Provide(newPosterMetrics),
	fx.Provide(service.NewService),
)

func newRenderer(cfg config.Config, log *zap.Logger) render.Renderer {
	return render.NewChromeRenderer(render.Config{
		ExecPath: cfg.ChromePath,
		Timeout:  cfg.RenderTimeout,
	}, log)
}

func newFileCache(cfg config.Config) *postercache.FileCache {
	return postercache.New(cfg.PosterCacheDir)
}

func newPosterMetrics(cfg config.Config) *metrics.PosterMetrics {
	return metrics.PosterWithConfig(metrics.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})
}
