package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/internal/application/usecase/section"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// PageHandler renders the portfolio. Section failures never surface here, the
// loaders have already swapped in fallback content.
type PageHandler struct {
	loaders *section.Loaders
	now     func() time.Time
}

func NewPageHandler(loaders *section.Loaders) *PageHandler {
	return &PageHandler{loaders: loaders, now: time.Now}
}

func (h *PageHandler) Index(c *gin.Context) {
	page := h.loaders.LoadPage(c.Request.Context())
	c.HTML(http.StatusOK, "index", pageView{Page: page, Year: h.now().Year()})
}

// Section serves one section as an HTMX fragment.
func (h *PageHandler) Section(c *gin.Context) {
	name := c.Param("name")
	res, ok := h.loaders.LoadSection(c.Request.Context(), name)
	if !ok {
		c.Error(apperror.NewNotFound("section", name))
		return
	}
	c.HTML(http.StatusOK, name, res)
}

func (h *PageHandler) SectionJSON(c *gin.Context) {
	name := c.Param("name")
	res, ok := h.loaders.LoadSection(c.Request.Context(), name)
	if !ok {
		c.Error(apperror.NewNotFound("section", name))
		return
	}
	c.JSON(http.StatusOK, res)
}
