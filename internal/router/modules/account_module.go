package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/account-core/internal/domain/service"
	handlers "github.com/oksasatya/account-core/internal/interface/http"
	"github.com/oksasatya/account-core/internal/interface/middleware"
)

type AccountModule struct {
	handler *handlers.AccountHandler
	tokens  service.TokenIssuer
	limiter *middleware.RateLimiter
	max     int
	window  time.Duration
}

func NewAccountModule(h *handlers.AccountHandler, tokens service.TokenIssuer, limiter *middleware.RateLimiter, max int, window time.Duration) *AccountModule {
	return &AccountModule{handler: h, tokens: tokens, limiter: limiter, max: max, window: window}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")

	// public, limited per client IP and route
	public := m.limiter.Limit(m.max, m.window, middleware.KeyByIPAndPath(), nil)
	users.POST("/signup", public, m.handler.Signup)
	users.POST("/login", public, m.handler.Login)

	// protected, limited per account
	profile := users.Group("/profile",
		middleware.Auth(m.tokens),
		m.limiter.Limit(m.max, m.window, middleware.KeyByAccountID(), nil),
	)
	profile.GET("", m.handler.GetProfile)
	profile.PUT("", m.handler.UpdateProfile)
}
