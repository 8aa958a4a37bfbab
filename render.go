package inkwell

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. The views package provides the default set; sites may supply their own.
type ViewFuncs struct {
	Index       func(data IndexData) templ.Component
	Post        func(data PostData) templ.Component
	NotFound    func(site SiteMetadata) templ.Component
	ServerError func(site SiteMetadata) templ.Component
}

func (v ViewFuncs) validate() error {
	if v.Index == nil || v.Post == nil || v.NotFound == nil || v.ServerError == nil {
		return fmt.Errorf("views: %w", ErrMissingContent)
	}
	return nil
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
// The component is rendered into a buffer first so a failing component
// cannot leave a half-written 200 response behind.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// RenderFile renders cmp to path, creating parent directories. It returns
// the number of bytes written.
func RenderFile(ctx context.Context, path string, cmp templ.Component) (int, error) {
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return 0, fmt.Errorf("render %s: %w", path, err)
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
