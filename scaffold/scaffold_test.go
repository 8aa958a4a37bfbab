package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/eringen/inkwell"
)

func TestNew(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-blog")
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	created, err := New(dir, now)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{
		"config.yaml",
		filepath.Join("content", "blog", "hello-world", "index.md"),
		filepath.Join("static", "robots.txt"),
		".gitignore",
	}
	for _, rel := range want {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}
	if len(created) != len(want) {
		t.Errorf("expected %d files, got %d: %v", len(want), len(created), created)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var cfg inkwell.SiteConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("config.yaml is not valid YAML: %v", err)
	}
	if cfg.Title != "My Blog" {
		t.Errorf("expected title My Blog, got %q", cfg.Title)
	}
	if !strings.Contains(string(raw), "repo:") {
		t.Errorf("config.yaml should carry the comments repo key:\n%s", raw)
	}
	if cfg.Comments.IssueTerm != "pathname" {
		t.Errorf("expected issue term pathname, got %q", cfg.Comments.IssueTerm)
	}

	post, err := os.ReadFile(filepath.Join(dir, "content", "blog", "hello-world", "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(post), "date: 2024-03-09") {
		t.Errorf("expected rendered date in sample post:\n%s", post)
	}
	if strings.Contains(string(post), "{{") {
		t.Error("sample post contains unrendered template actions")
	}
}

func TestNewExistingDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(dir, time.Now()); err == nil {
		t.Fatal("expected error for existing directory")
	}
}

func TestSiteName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-blog", "My Blog"},
		{"myblog", "Myblog"},
		{"notes_from_home", "Notes From Home"},
	}
	for _, tt := range tests {
		if got := SiteName(tt.in); got != tt.want {
			t.Errorf("SiteName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
