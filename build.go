package inkwell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// Builder runs the page queries and renders the static site.
type Builder struct {
	Config   SiteConfig
	Views    ViewFuncs
	Store    *Store
	Markdown Converter

	logger Logger
}

// Report summarises one build.
type Report struct {
	Posts    int
	Pages    int
	Assets   int
	Bytes    int64
	Duration time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("%d posts, %d pages, %d assets, %s in %s",
		r.Posts, r.Pages, r.Assets, humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
}

// NewBuilder returns a Builder. A nil logger selects NewLogger.
func NewBuilder(cfg SiteConfig, views ViewFuncs, store *Store, conv Converter, logger Logger) *Builder {
	cfg.SetDefaults()
	if logger == nil {
		logger = NewLogger()
	}
	return &Builder{Config: cfg, Views: views, Store: store, Markdown: conv, logger: logger}
}

// Index loads the Markdown sources and replaces the content index with them.
func (b *Builder) Index(ctx context.Context) ([]Post, error) {
	posts, _, err := b.index(ctx)
	return posts, err
}

func (b *Builder) index(ctx context.Context) ([]Post, []string, error) {
	posts, drafts, err := loadContent(b.Config.ContentDir, b.Markdown, b.Config.ExcerptLength)
	if err != nil {
		return nil, nil, err
	}
	if err := b.Store.ReplacePosts(ctx, posts); err != nil {
		return nil, nil, fmt.Errorf("index posts: %w", err)
	}
	b.logger.Infof("indexed %d posts from %s", len(posts), b.Config.ContentDir)
	return posts, drafts, nil
}

// Build indexes the content and writes the whole site to the output dir.
// Any failure aborts the build; the output dir may then be incomplete.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	start := time.Now()
	var rep Report
	if err := b.Views.validate(); err != nil {
		return rep, err
	}

	posts, drafts, err := b.index(ctx)
	if err != nil {
		return rep, err
	}
	rep.Posts = len(posts)

	out := b.Config.OutputDir
	if err := b.prepareOutput(); err != nil {
		return rep, err
	}

	if _, err := os.Stat(b.Config.StaticDir); err == nil {
		files, n, err := copyStatic(b.Config.StaticDir, out, b.Config.MaxImageWidth, b.logger)
		if err != nil {
			return rep, fmt.Errorf("copy static: %w", err)
		}
		rep.Assets, rep.Bytes = files, n
	} else {
		b.logger.Debugf("static dir %s not found, skipping", b.Config.StaticDir)
	}

	files, n, err := copyContentAssets(b.Config.ContentDir, out, posts, drafts, b.Config.MaxImageWidth, b.logger)
	if err != nil {
		return rep, fmt.Errorf("copy post files: %w", err)
	}
	rep.Assets += files
	rep.Bytes += n

	site := b.Config.Site()
	page := func(path string, render func() (int, error)) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := render()
		if err != nil {
			return err
		}
		rep.Pages++
		rep.Bytes += int64(n)
		b.logger.Debugf("wrote %s (%s)", path, humanize.Bytes(uint64(n)))
		return nil
	}

	index, err := QueryIndex(ctx, b.Store, site)
	if err != nil {
		return rep, err
	}
	indexPath := filepath.Join(out, "index.html")
	if err := page(indexPath, func() (int, error) {
		return RenderFile(ctx, indexPath, b.Views.Index(index))
	}); err != nil {
		return rep, err
	}

	for _, p := range index.Posts {
		data, err := QueryPost(ctx, b.Store, site, p.Slug)
		if err != nil {
			return rep, err
		}
		path := filepath.Join(out, filepath.FromSlash(p.Slug), "index.html")
		if err := page(path, func() (int, error) {
			return RenderFile(ctx, path, b.Views.Post(data))
		}); err != nil {
			return rep, err
		}
	}

	notFound := filepath.Join(out, "404.html")
	if err := page(notFound, func() (int, error) {
		return RenderFile(ctx, notFound, b.Views.NotFound(site))
	}); err != nil {
		return rep, err
	}

	var buf bytes.Buffer
	if err := WriteSitemap(&buf, site.URL, index.Posts); err != nil {
		return rep, fmt.Errorf("sitemap: %w", err)
	}
	if err := writeFile(filepath.Join(out, "sitemap.xml"), buf.Bytes()); err != nil {
		return rep, err
	}
	rep.Bytes += int64(buf.Len())

	buf.Reset()
	if err := WriteFeed(&buf, site, index.Posts); err != nil {
		return rep, fmt.Errorf("feed: %w", err)
	}
	if err := writeFile(filepath.Join(out, "feed.xml"), buf.Bytes()); err != nil {
		return rep, err
	}
	rep.Bytes += int64(buf.Len())

	rep.Duration = time.Since(start)
	b.logger.Infof("built %s: %s", out, rep)
	return rep, nil
}

// prepareOutput empties the output dir. It refuses to wipe a directory that
// contains the sources.
func (b *Builder) prepareOutput() error {
	out, err := filepath.Abs(b.Config.OutputDir)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	for _, protected := range []string{cwd, b.Config.ContentDir, b.Config.StaticDir} {
		p, err := filepath.Abs(protected)
		if err != nil {
			return err
		}
		if rel, err := filepath.Rel(out, p); err == nil && !startsWithParent(rel) {
			return fmt.Errorf("output dir %s would remove %s", b.Config.OutputDir, protected)
		}
	}
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clean output dir: %w", err)
	}
	return os.MkdirAll(out, 0o755)
}

func startsWithParent(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}
