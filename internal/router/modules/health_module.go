package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/account-core/internal/interface/http"
)

type HealthModule struct {
	handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule { return &HealthModule{handler: h} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.handler.Health)
}
