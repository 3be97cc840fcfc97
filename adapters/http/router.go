package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type RouterDeps struct {
	Templates *template.Template
	// ImagesDir backs /images, where un-hosted image refs resolve. Empty skips the route.
	ImagesDir string
	JWT       *auth.JWTService
	Logger    logger.Logger

	Pages   *PageHandler
	Contact *ContactHandler
	Health  *HealthHandler
	Auth    *AuthHandler
	Admin   *AdminHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(d.Templates)
	router.Use(RequestLogger(d.Logger), RecoveryPage(d.Logger), ErrorMiddleware(d.Logger))

	router.StaticFS("/static", http.FS(StaticFS()))
	if d.ImagesDir != "" {
		router.Static(media_storage.LocalImagePrefix, d.ImagesDir)
	}

	router.GET("/", d.Pages.Index)
	router.GET("/sections/:name", d.Pages.Section)
	router.GET("/contact-form", d.Contact.Form)
	router.POST("/contact", d.Contact.Submit)
	router.GET("/health", d.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/sections/:name", d.Pages.SectionJSON)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/auth/login", d.Auth.Login)

		adminPrivate := admin.Group("/")
		adminPrivate.Use(AuthMiddleware(d.JWT, d.Logger))
		{
			adminPrivate.GET("/messages/unread-count", d.Admin.UnreadCount)
			adminPrivate.GET("/user", d.Admin.ActiveUser)
		}
	}

	return router
}
