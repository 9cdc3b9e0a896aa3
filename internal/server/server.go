package server

import (
	"time"

	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	"github.com/smallbiznis/reviewqr/internal/config"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const contextUserIDKey = "user_id"

type Server struct {
	cfg           config.Config
	log           *zap.Logger
	db            *gorm.DB
	businessSvc   businessdomain.Service
	posterSvc     posterdomain.Service
	renderLimiter *rateLimiter
}

type Params struct {
	fx.In

	Cfg         config.Config
	Log         *zap.Logger
	DB          *gorm.DB
	BusinessSvc businessdomain.Service
	PosterSvc   posterdomain.Service
}

// defaultRenderRateLimit applies when the configured limit is unset.
const defaultRenderRateLimit = 30

func NewServer(p Params) *Server {
	limit := p.Cfg.RenderRateLimit
	if limit <= 0 {
		limit = defaultRenderRateLimit
	}
	return &Server{
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		db:          p.DB,
		businessSvc: p.BusinessSvc,
		posterSvc:   p.PosterSvc,
		// Renders spawn a browser process each; cap how fast one user can
		// trigger them.
		renderLimiter: newRateLimiter(limit, time.Minute),
	}
}
