// Package render wires html/template into Echo. All page context is passed
// explicitly per request; nothing is cached across requests.
package render

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer is an echo.Renderer over a parsed template set.
type TemplateRenderer struct {
	templates *template.Template
}

// New parses every template matching glob, e.g. "web/templates/*.html".
func New(glob string) (*TemplateRenderer, error) {
	tpl, err := template.ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: tpl}, nil
}

// Render executes the named template with the given per-request data.
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

// HTTPErrorHandler renders the site-wide not-found page for 404s and falls
// back to Echo's default handling for everything else.
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code == http.StatusNotFound && !c.Response().Committed {
			if rerr := c.Render(http.StatusNotFound, "404.html", echo.Map{
				"Title": "Page not found",
			}); rerr == nil {
				return
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
