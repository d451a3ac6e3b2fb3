package setup

import (
	"context"

	"github.com/forum-api/forum-api/backend/internal/handler"
	"github.com/forum-api/forum-api/backend/internal/service"
	"github.com/forum-api/forum-api/backend/internal/service/utils"
	"github.com/forum-api/forum-api/backend/internal/storage/pg"
	"github.com/forum-api/forum-api/shared/config"
	"github.com/forum-api/forum-api/shared/jwt"
	mw "github.com/forum-api/forum-api/shared/middleware"
	"github.com/forum-api/forum-api/shared/middleware/ratelimiter"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	WriteLimiter   *ratelimiter.Limiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sanitizer := utils.NewSanitizer()
	thread := service.NewThread(storage, storage, sanitizer)
	comment := service.NewComment(storage, storage, sanitizer)

	var limiter *ratelimiter.Limiter
	if rl := cfg.Public.RateLimit; rl.WritesPerMinute > 0 {
		burst := rl.Burst
		if burst == 0 {
			burst = 1
		}
		limiter = ratelimiter.PerMinute(rl.WritesPerMinute, burst)
	}

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(thread, comment, storage),
		AuthMiddleware: mw.NewAuth(jwt.New(cfg.JwtKey(), 0)),
		WriteLimiter:   limiter,
	}, nil
}
