package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

type ContactHandler struct {
	form *contact.Form
}

func NewContactHandler(form *contact.Form) *ContactHandler {
	return &ContactHandler{form: form}
}

func (h *ContactHandler) Form(c *gin.Context) {
	h.render(c, contact.Status{State: contact.StateIdle})
}

// Submit answers with the form fragment in its resulting state. Validation
// and backend failures are still 200 so HTMX swaps the fragment in.
func (h *ContactHandler) Submit(c *gin.Context) {
	var data portfolio.ContactFormData
	if err := c.ShouldBind(&data); err != nil {
		h.render(c, contact.Status{State: contact.StateError, ErrorMessage: contact.MsgRequiredFields})
		return
	}

	status := h.form.Submit(c.Request.Context(), c.ClientIP(), data)
	h.render(c, status)
}

func (h *ContactHandler) render(c *gin.Context, status contact.Status) {
	c.HTML(http.StatusOK, "contact", contactView{
		Status: status,
		Window: h.form.SuccessWindow(),
		Sent:   contact.MsgSent,
	})
}
