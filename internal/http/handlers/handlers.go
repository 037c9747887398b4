package handlers

import (
	"time"

	"github.com/phungtienthanh/portfolio-api/internal/http/cors"
	"github.com/phungtienthanh/portfolio-api/internal/platform/mailer"
	"github.com/phungtienthanh/portfolio-api/internal/ratelimit"
	"github.com/phungtienthanh/portfolio-api/pkg/config"
)

type Handlers struct {
	cfg     *config.Config
	mailer  mailer.Service
	limiter *ratelimit.Store
	guard   *cors.Guard
	started time.Time
}

func New(cfg *config.Config, m mailer.Service, limiter *ratelimit.Store, guard *cors.Guard) *Handlers {
	return &Handlers{
		cfg:     cfg,
		mailer:  m,
		limiter: limiter,
		guard:   guard,
		started: time.Now(),
	}
}
