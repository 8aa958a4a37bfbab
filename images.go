package inkwell

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const jpegQuality = 80

// resizableExts are re-encoded when wider than the configured maximum.
// Everything else, GIFs included, is copied untouched.
var resizableExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// scaleImage decodes src and, if it is wider than maxWidth, downscales it
// preserving the aspect ratio. The result keeps the source format. ok is
// false when the image was already small enough and src should be copied.
func scaleImage(src []byte, maxWidth int) (out []byte, ok bool, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return nil, false, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= maxWidth {
		return nil, false, nil
	}
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	newH := h * maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(&buf, dst)
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}

// assetCopier writes files into the output dir, downscaling oversized
// images, and counts what it wrote.
type assetCopier struct {
	maxWidth int
	logger   Logger
	files    int
	written  int64
}

func (a *assetCopier) copy(path, target string) error {
	if resizableExts[strings.ToLower(filepath.Ext(path))] {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		scaled, ok, err := scaleImage(data, a.maxWidth)
		if err != nil {
			// Not fatal: a file with an image extension that does not
			// decode is published as-is.
			a.logger.Warnf("image %s: %v; copying unchanged", path, err)
		}
		if ok {
			data = scaled
			a.logger.Debugf("downscaled %s to %dpx", path, a.maxWidth)
		}
		if err := writeFile(target, data); err != nil {
			return err
		}
		a.files++
		a.written += int64(len(data))
		return nil
	}

	n, err := copyFile(path, target)
	if err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	a.files++
	a.written += n
	return nil
}

// copyStatic copies the static tree into dst, downscaling oversized images.
// It returns the number of files and bytes written.
func copyStatic(src, dst string, maxWidth int, logger Logger) (files int, written int64, err error) {
	a := &assetCopier{maxWidth: maxWidth, logger: logger}
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return a.copy(path, target)
	})
	return a.files, a.written, err
}

// copyContentAssets publishes the non-Markdown files of the content tree.
// Files inside a post directory ("hello/index.md" plus "hello/pic.png") land
// beside the rendered page under the post's slug, so relative links in the
// post resolve. Other files keep their path relative to the content root.
// Draft directories are not published.
func copyContentAssets(src, dst string, posts []Post, drafts []string, maxWidth int, logger Logger) (files int, written int64, err error) {
	bundles := postBundles(src, posts)
	skip := make(map[string]bool, len(drafts))
	for _, d := range drafts {
		skip[d] = true
	}
	a := &assetCopier{maxWidth: maxWidth, logger: logger}
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if skip[rel] {
				return filepath.SkipDir
			}
			return nil
		}
		if isMarkdown(path) {
			return nil
		}
		return a.copy(path, filepath.Join(dst, filepath.FromSlash(assetURLPath(rel, bundles))))
	})
	return a.files, a.written, err
}

// postBundles maps each post directory (slash-separated, relative to the
// content root) to the slug of the post whose index.md lives in it.
func postBundles(root string, posts []Post) map[string]string {
	bundles := make(map[string]string)
	for _, p := range posts {
		if !strings.EqualFold(filepath.Base(p.Source), "index.md") {
			continue
		}
		dir, err := filepath.Rel(root, filepath.Dir(p.Source))
		if err != nil || dir == "." {
			continue
		}
		bundles[filepath.ToSlash(dir)] = p.Slug
	}
	return bundles
}

// assetURLPath returns the URL path (without leading slash) a content file
// is published at. The innermost post directory wins.
func assetURLPath(rel string, bundles map[string]string) string {
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if slug, ok := bundles[dir]; ok {
			return strings.TrimPrefix(slug, "/") + strings.TrimPrefix(rel, dir+"/")
		}
	}
	return rel
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
