package http

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadTemplates parses every page and fragment. now is injected so durations
// render deterministically in tests.
func LoadTemplates(images service.ImageResolver, now func() time.Time) (*template.Template, error) {
	funcs := template.FuncMap{
		"formatMonth": portfolio.FormatMonth,
		"duration": func(e portfolio.Experience) string {
			return e.Duration(now())
		},
		"image": func(ref *string) string {
			if ref == nil {
				return ""
			}
			return images.ResolveImage(*ref)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"millis": func(d time.Duration) int64 {
			return d.Milliseconds()
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
