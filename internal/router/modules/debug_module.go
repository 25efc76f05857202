package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/account-core/internal/interface/middleware"
)

type DebugModule struct {
	limiter *middleware.RateLimiter
}

func NewDebugModule(limiter *middleware.RateLimiter) *DebugModule {
	return &DebugModule{limiter: limiter}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar counters, rate-limited per IP; private-network scrapers bypass the limit
	rl := m.limiter.Limit(120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
