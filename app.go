// Package inkwell is a static blog generator built with Go, templ and Echo.
// It turns a directory of Markdown posts into an index page and one page per
// post, and can serve the same pages live while watching the sources.
//
// Sites provide their templ components via the ViewFuncs struct; the views
// package carries the default set.
package inkwell

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the preview server. It wires together the store, cache, builder,
// watcher, handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *PostCache
	Views   ViewFuncs
	Builder *Builder

	markdown     Converter
	logger       Logger
	customRoutes []func(*App)
}

// New creates an App with the given configuration, views and Markdown converter.
func New(cfg SiteConfig, views ViewFuncs, conv Converter, opts ...Option) *App {
	cfg.SetDefaults()

	e := echo.New()
	e.HideBanner = true
	a := &App{
		Config:   cfg,
		Echo:     e,
		Views:    views,
		markdown: conv,
		logger:   e.Logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Open initializes the store, builder and cache without starting the server.
func (a *App) Open() error {
	if err := a.Views.validate(); err != nil {
		return fmt.Errorf("inkwell: %w", err)
	}
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("inkwell: init store: %w", err)
	}
	a.Store = store
	a.Builder = NewBuilder(a.Config, a.Views, store, a.markdown, a.logger)
	a.Cache = NewPostCache(store, a.Config.PostCacheTTL)
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start indexes the content, starts the watcher and serves until ctx is
// cancelled, then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	if err := a.Open(); err != nil {
		return err
	}
	if _, err := a.Builder.Index(ctx); err != nil {
		return fmt.Errorf("inkwell: initial index: %w", err)
	}

	w, err := NewWatcher(a.logger, a.reindex, a.Config.ContentDir, a.Config.StaticDir)
	if err != nil {
		return fmt.Errorf("inkwell: watch: %w", err)
	}
	defer w.Close()
	go w.Run(ctx)

	errc := make(chan error, 1)
	go func() {
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

// reindex rebuilds the content index after a source change. A broken post
// keeps the previous index in place so the preview stays up.
func (a *App) reindex(ctx context.Context) {
	if _, err := a.Builder.Index(ctx); err != nil {
		a.logger.Errorf("reindex: %v", err)
		return
	}
	a.Cache.Invalidate()
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/*", a.handlePost)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
