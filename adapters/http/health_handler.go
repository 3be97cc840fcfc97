package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type HealthHandler struct {
	api    service.PortfolioReader
	logger logger.Logger
}

func NewHealthHandler(api service.PortfolioReader, log logger.Logger) *HealthHandler {
	return &HealthHandler{api: api, logger: log}
}

// Health is always 200; the backend's state is reported, not propagated.
func (h *HealthHandler) Health(c *gin.Context) {
	backend, err := h.api.HealthCheck(c.Request.Context())
	if err != nil {
		h.logger.Warn("backend health check failed", zap.Error(err))
		backend = apperror.UserMessage(err)
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "UP", Backend: backend})
}
