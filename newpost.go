package inkwell

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/eringen/inkwell/dates"
)

// NewPostFile writes a post skeleton for title below contentDir and returns
// its path. The post lives in its own directory so images can sit beside it.
func NewPostFile(contentDir, title string, now time.Time) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title %q: %w", title, ErrMissingContent)
	}
	path := filepath.Join(contentDir, slug, "index.md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s: %w", path, os.ErrExist)
	}

	date, err := dates.Format(now)
	if err != nil {
		return "", err
	}
	fm, err := yaml.Marshal(frontMatter{Title: title, Date: date})
	if err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n\n")
	buf.WriteString("Write something.\n")
	if err := writeFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
