package inkwell_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/markdown"
	"github.com/eringen/inkwell/style"
	"github.com/eringen/inkwell/views"
)

func setupTestApp(t *testing.T) (*inkwell.App, testSite) {
	t.Helper()
	site := setupTestSite(t, samplePosts)
	writeFiles(t, site.cfg.StaticDir, map[string]string{"robots.txt": "User-agent: *\n"})

	funcs := views.Funcs(views.Options{Comments: site.cfg.Comments})
	app := inkwell.New(site.cfg, funcs, markdown.New(style.Default()))
	if err := app.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	if _, err := app.Builder.Index(context.Background()); err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	return app, site
}

func serve(app *inkwell.App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleHome(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := serve(app, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Count(body, `class="post-summary"`) != 2 {
		t.Error("expected two summaries")
	}
	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "no-cache") {
		t.Errorf("expected no-cache header, got %q", got)
	}
	if got := rec.Header().Get("Content-Security-Policy"); !strings.Contains(got, "https://utteranc.es") {
		t.Errorf("expected CSP allowing utterances, got %q", got)
	}
}

func TestHandlePost(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := serve(app, "/a/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<h1 class="post-title">A</h1>`) {
		t.Error("expected post title")
	}
	if !strings.Contains(body, `rel="prev">← B</a>`) {
		t.Error("expected link to previous post")
	}
}

func TestHandlePostRedirectsToSlash(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := serve(app, "/a")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/a/" {
		t.Errorf("expected redirect to /a/, got %q", loc)
	}
}

func TestHandlePostNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := serve(app, "/missing/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not Found") {
		t.Error("expected the not found page")
	}
}

func TestHandleStaticFile(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := serve(app, "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "User-agent: *\n" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestHandleFeedAndSitemap(t *testing.T) {
	app, _ := setupTestApp(t)

	feed := serve(app, "/feed.xml")
	if feed.Code != http.StatusOK || !strings.HasPrefix(feed.Header().Get(echo.HeaderContentType), "application/rss+xml") {
		t.Fatalf("unexpected feed response %d %q", feed.Code, feed.Header().Get(echo.HeaderContentType))
	}
	if strings.Count(feed.Body.String(), "<item>") != 2 {
		t.Error("expected 2 feed items")
	}

	sm := serve(app, "/sitemap.xml")
	if sm.Code != http.StatusOK || !strings.Contains(sm.Body.String(), "<loc>https://example.com/b/</loc>") {
		t.Errorf("unexpected sitemap:\n%s", sm.Body.String())
	}
}

func TestHandleServerError(t *testing.T) {
	site := setupTestSite(t, samplePosts)
	funcs := views.Funcs(views.Options{})
	funcs.Index = func(inkwell.IndexData) templ.Component {
		return views.Layout(views.LayoutProps{Site: site.cfg.Site()}, nil)
	}
	app := inkwell.New(site.cfg, funcs, markdown.New(style.Default()))
	if err := app.Open(); err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	if _, err := app.Builder.Index(context.Background()); err != nil {
		t.Fatal(err)
	}

	rec := serve(app, "/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Error("expected the server error page")
	}
}

func TestWithCustomRoutes(t *testing.T) {
	site := setupTestSite(t, samplePosts)
	app := inkwell.New(site.cfg, views.Funcs(views.Options{}), markdown.New(style.Default()),
		inkwell.WithCustomRoutes(func(a *inkwell.App) {
			a.Echo.GET("/healthz", func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})
		}))
	if err := app.Open(); err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	rec := serve(app, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("unexpected custom route response %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandlePostFiles(t *testing.T) {
	site := setupTestSite(t, map[string]string{
		"hello/index.md":  "---\ntitle: Hello\ndate: 2020-01-02\n---\n\n![pic](./pic.txt)\n",
		"hello/pic.txt":   "picture",
		"moved/index.md":  "---\ntitle: Moved\ndate: 2020-01-01\nslug: elsewhere\n---\n\nBody\n",
		"moved/file.txt":  "moved",
		"secret/index.md": "---\ntitle: Secret\ndraft: true\n---\n\nBody\n",
		"secret/plan.txt": "private",
		"shared/logo.txt": "logo",
	})
	app := inkwell.New(site.cfg, views.Funcs(views.Options{}), markdown.New(style.Default()))
	if err := app.Open(); err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	if _, err := app.Builder.Index(context.Background()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		code int
		body string
	}{
		{"/hello/pic.txt", http.StatusOK, "picture"},
		{"/elsewhere/file.txt", http.StatusOK, "moved"},
		{"/shared/logo.txt", http.StatusOK, "logo"},
		{"/moved/file.txt", http.StatusNotFound, ""},
		{"/secret/plan.txt", http.StatusNotFound, ""},
		{"/hello/index.md", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		rec := serve(app, tt.path)
		if rec.Code != tt.code {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.code, rec.Code)
			continue
		}
		if tt.body != "" && rec.Body.String() != tt.body {
			t.Errorf("%s: expected body %q, got %q", tt.path, tt.body, rec.Body.String())
		}
	}
}
