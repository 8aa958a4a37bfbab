package inkwell

import (
	"testing"
	"time"
)

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.SetDefaults()

	if cfg.Title != "Blog" || cfg.Lang != "en" || cfg.Addr != ":8000" {
		t.Errorf("unexpected site defaults %+v", cfg)
	}
	if cfg.ContentDir != "content/blog" || cfg.OutputDir != "public" {
		t.Errorf("unexpected dir defaults %q %q", cfg.ContentDir, cfg.OutputDir)
	}
	if cfg.ExcerptLength != 160 || cfg.MaxImageWidth != 800 || cfg.PostCacheTTL != 5*time.Minute {
		t.Errorf("unexpected tuning defaults %+v", cfg)
	}
	if cfg.Comments.IssueTerm != "pathname" || cfg.Comments.Theme != "github-light" {
		t.Errorf("unexpected comment defaults %+v", cfg.Comments)
	}
}

func TestSetDefaultsLeavesCommentsRepoEmpty(t *testing.T) {
	var cfg SiteConfig
	cfg.SetDefaults()
	if cfg.Comments.Repo != "" {
		t.Errorf("an unset repo must stay empty so comments are disabled, got %q", cfg.Comments.Repo)
	}

	cfg = SiteConfig{Comments: CommentsConfig{Repo: "owner/repo"}}
	cfg.SetDefaults()
	if cfg.Comments.Repo != "owner/repo" {
		t.Errorf("expected configured repo kept, got %q", cfg.Comments.Repo)
	}
}

func TestSetDefaultsKeepsValues(t *testing.T) {
	cfg := SiteConfig{Title: "Mine", ExcerptLength: 20, PostCacheTTL: time.Second}
	cfg.SetDefaults()
	if cfg.Title != "Mine" || cfg.ExcerptLength != 20 || cfg.PostCacheTTL != time.Second {
		t.Errorf("configured values overwritten: %+v", cfg)
	}
}
