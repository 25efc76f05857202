package router

import (
	"github.com/oksasatya/account-core/internal/container"
	handlers "github.com/oksasatya/account-core/internal/interface/http"
	"github.com/oksasatya/account-core/internal/interface/middleware"
	"github.com/oksasatya/account-core/internal/router/modules"
)

// InitModules builds the route modules from the container and registers them.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	limiter := middleware.NewRateLimiter(c.Redis, c.Logger)

	accountHandler := handlers.NewAccountHandler(c.Service, c.Logger)
	r.Add(modules.NewAccountModule(accountHandler, c.JWT, limiter, c.Config.RateLimitMax, c.Config.RateLimitWindow))

	var db handlers.Pinger
	if c.PGPool != nil {
		db = c.PGPool
	}
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(db)))

	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(limiter))
	}
}
