package inkwell

import "time"

// SiteConfig holds all configuration for an inkwell site.
type SiteConfig struct {
	Title       string `mapstructure:"title" yaml:"title"`             // Site title (default "Blog")
	Author      string `mapstructure:"author" yaml:"author"`           // Author shown in share text
	Description string `mapstructure:"description" yaml:"description"` // Feed description
	URL         string `mapstructure:"url" yaml:"url"`                 // Canonical URL (default "http://localhost:8000")
	Lang        string `mapstructure:"lang" yaml:"lang"`               // <html lang> (default "en")

	ContentDir   string `mapstructure:"contentDir" yaml:"contentDir"`     // Markdown sources (default "content/blog")
	StaticDir    string `mapstructure:"staticDir" yaml:"staticDir"`       // Copied verbatim (default "static")
	OutputDir    string `mapstructure:"outputDir" yaml:"outputDir"`       // Build output (default "public")
	DatabasePath string `mapstructure:"databasePath" yaml:"databasePath"` // SQLite content index (default "data/content.db")

	Addr string `mapstructure:"addr" yaml:"addr"` // Preview listen address (default ":8000")

	ExcerptLength int           `mapstructure:"excerptLength" yaml:"excerptLength"` // Runes kept in generated excerpts (default 160)
	MaxImageWidth int           `mapstructure:"maxImageWidth" yaml:"maxImageWidth"` // Wider static images are downscaled (default 800)
	PostCacheTTL  time.Duration `mapstructure:"postCacheTTL" yaml:"postCacheTTL"`   // Preview cache TTL (default 5m)

	Comments CommentsConfig `mapstructure:"comments" yaml:"comments"`
}

// CommentsConfig parameterizes the utterances comment widget.
type CommentsConfig struct {
	Repo      string `mapstructure:"repo" yaml:"repo"`           // GitHub "owner/name" holding the issues; empty disables comments
	IssueTerm string `mapstructure:"issueTerm" yaml:"issueTerm"` // How pages map to issues (default "pathname")
	Label     string `mapstructure:"label" yaml:"label"`         // Issue label
	Theme     string `mapstructure:"theme" yaml:"theme"`         // Widget theme (default "github-light")
}

// SetDefaults fills zero fields with their defaults.
func (c *SiteConfig) SetDefaults() {
	if c.Title == "" {
		c.Title = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8000"
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/content.db"
	}
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.ExcerptLength <= 0 {
		c.ExcerptLength = 160
	}
	if c.MaxImageWidth <= 0 {
		c.MaxImageWidth = 800
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.Comments.IssueTerm == "" {
		c.Comments.IssueTerm = "pathname"
	}
	if c.Comments.Label == "" {
		c.Comments.Label = "📢blog-comments"
	}
	if c.Comments.Theme == "" {
		c.Comments.Theme = "github-light"
	}
}

// Site returns the metadata shared by every page.
func (c SiteConfig) Site() SiteMetadata {
	return SiteMetadata{
		Title:       c.Title,
		Author:      c.Author,
		Description: c.Description,
		URL:         c.URL,
		Lang:        c.Lang,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the App logger used by the builder and watcher.
func WithLogger(l Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
