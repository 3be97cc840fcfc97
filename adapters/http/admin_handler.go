package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type AdminHandler struct {
	api    service.PortfolioReader
	images service.ImageResolver
	logger logger.Logger
}

func NewAdminHandler(api service.PortfolioReader, images service.ImageResolver, log logger.Logger) *AdminHandler {
	return &AdminHandler{api: api, images: images, logger: log}
}

func (h *AdminHandler) audit(c *gin.Context) {
	subject, _ := GetSubjectFromGinContext(c)
	h.logger.Debug("admin request", zap.String("subject", subject), zap.String("path", c.FullPath()))
}

func (h *AdminHandler) UnreadCount(c *gin.Context) {
	h.audit(c)
	n, err := h.api.GetUnreadMessageCount(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Unread: n})
}

func (h *AdminHandler) ActiveUser(c *gin.Context) {
	h.audit(c)
	u, err := h.api.GetActiveUser(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAdminUserDTO(u, h.images.ResolveImage))
}
