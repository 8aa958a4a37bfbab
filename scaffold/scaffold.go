// Package scaffold creates new inkwell site directories from embedded
// templates.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/dates"
)

// Templates contains the starter files of a new site.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

const templateRoot = "templates"

// Data holds the template variables passed to every scaffold template.
type Data struct {
	ProjectName string
	SiteName    string
	URL         string
	Date        string
}

// New creates the site directory dir and returns the files it wrote.
// The directory must not exist yet.
func New(dir string, now time.Time) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %q already exists", dir)
	}

	name := filepath.Base(dir)
	cfg := inkwell.SiteConfig{Title: SiteName(name)}
	cfg.SetDefaults()

	date, err := dates.Format(now)
	if err != nil {
		return nil, err
	}
	data := Data{
		ProjectName: name,
		SiteName:    cfg.Title,
		URL:         inkwell.BuildURL(cfg.URL),
		Date:        date,
	}

	var created []string
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := writeConfig(cfgPath, cfg); err != nil {
		return nil, err
	}
	created = append(created, cfgPath)

	err = fs.WalkDir(Templates, templateRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, templateRoot), "/")
		out := filepath.Join(dir, filepath.FromSlash(strings.TrimSuffix(rel, ".tmpl")))
		if base := filepath.Base(out); strings.HasPrefix(base, "dot") {
			out = filepath.Join(filepath.Dir(out), "."+strings.TrimPrefix(base, "dot"))
		}
		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}
		if err := render(p, out, data); err != nil {
			return err
		}
		created = append(created, out)
		return nil
	})
	if err != nil {
		return created, err
	}
	return created, nil
}

// SiteName turns a directory name into a title: "my-blog" -> "My Blog".
func SiteName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func writeConfig(p string, cfg inkwell.SiteConfig) error {
	// Paths and tuning values keep their defaults and are left out so the
	// file only carries what a new site is expected to edit.
	doc := struct {
		Title       string                 `yaml:"title"`
		Author      string                 `yaml:"author"`
		Description string                 `yaml:"description"`
		URL         string                 `yaml:"url"`
		Lang        string                 `yaml:"lang"`
		Comments    inkwell.CommentsConfig `yaml:"comments"`
	}{cfg.Title, cfg.Author, cfg.Description, cfg.URL, cfg.Lang, cfg.Comments}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

func render(src, dst string, data Data) error {
	content, err := Templates.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	tmpl, err := template.New(path.Base(src)).Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse template %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("execute template %s: %w", src, err)
	}
	return nil
}
