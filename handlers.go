package inkwell

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	data, err := QueryIndex(c.Request().Context(), a.Cache, a.Config.Site())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Index(data))
}

// handlePost serves a static file if one matches the path, otherwise the
// post whose slug is the path.
func (a *App) handlePost(c echo.Context) error {
	p := path.Clean("/" + c.Request().URL.Path)
	if file, ok := a.staticFile(p); ok {
		return c.File(file)
	}
	if file, ok := a.contentFile(c.Request().Context(), p); ok {
		return c.File(file)
	}
	slug := normalizeSlug(p)
	data, err := QueryPost(c.Request().Context(), a.Cache, a.Config.Site(), slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	if !strings.HasSuffix(c.Request().URL.Path, "/") {
		return c.Redirect(http.StatusMovedPermanently, slug)
	}
	return Render(c, a.Views.Post(data))
}

func (a *App) staticFile(urlPath string) (string, bool) {
	if urlPath == "/" {
		return "", false
	}
	return regularFile(filepath.Join(a.Config.StaticDir, filepath.FromSlash(urlPath)))
}

// contentFile resolves a file published from the content tree, mirroring
// copyContentAssets: a file under a post's slug is looked up beside that
// post's index.md, anything else relative to the content root. Markdown
// sources are never served.
func (a *App) contentFile(ctx context.Context, urlPath string) (string, bool) {
	if path.Ext(urlPath) == "" || isMarkdown(urlPath) {
		return "", false
	}
	for dir := path.Dir(urlPath); dir != "/" && dir != "."; dir = path.Dir(dir) {
		post, err := a.Cache.GetPost(ctx, normalizeSlug(dir))
		if err != nil {
			continue
		}
		if !strings.EqualFold(filepath.Base(post.Source), "index.md") {
			break
		}
		rel := strings.TrimPrefix(urlPath, dir+"/")
		return regularFile(filepath.Join(filepath.Dir(post.Source), filepath.FromSlash(rel)))
	}
	// Files of drafts and of posts with a custom slug live in a post
	// directory but are not published under its path.
	for dir := path.Dir(urlPath); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, ok := regularFile(filepath.Join(a.Config.ContentDir, filepath.FromSlash(dir), "index.md")); ok {
			return "", false
		}
	}
	return regularFile(filepath.Join(a.Config.ContentDir, filepath.FromSlash(urlPath)))
}

func regularFile(name string) (string, bool) {
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config.Site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config.Site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
