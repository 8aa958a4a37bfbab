package inkwell

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodeTestImage(t *testing.T, format string, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestScaleImage(t *testing.T) {
	tests := []struct {
		format string
		w, h   int
		max    int
		scaled bool
		wantW  int
		wantH  int
	}{
		{"png", 1000, 500, 800, true, 800, 400},
		{"jpeg", 1200, 300, 600, true, 600, 150},
		{"png", 400, 400, 800, false, 0, 0},
		{"png", 2000, 1, 800, true, 800, 1},
	}
	for _, tt := range tests {
		out, ok, err := scaleImage(encodeTestImage(t, tt.format, tt.w, tt.h), tt.max)
		if err != nil {
			t.Fatalf("%s %dx%d: %v", tt.format, tt.w, tt.h, err)
		}
		if ok != tt.scaled {
			t.Errorf("%s %dx%d: expected scaled=%v", tt.format, tt.w, tt.h, tt.scaled)
			continue
		}
		if !ok {
			continue
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		if err != nil {
			t.Fatal(err)
		}
		if format != tt.format {
			t.Errorf("expected format %s, got %s", tt.format, format)
		}
		if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
			t.Errorf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, cfg.Width, cfg.Height)
		}
	}
}

func TestScaleImageInvalid(t *testing.T) {
	if _, _, err := scaleImage([]byte("not an image"), 800); err == nil {
		t.Error("expected decode error")
	}
}

func TestCopyStatic(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeTree(t, src, map[string]string{
		"css/site.css": "body{}",
		"broken.png":   "not a png",
	})
	if err := os.WriteFile(filepath.Join(src, "wide.png"), encodeTestImage(t, "png", 1000, 10), 0o644); err != nil {
		t.Fatal(err)
	}

	files, written, err := copyStatic(src, dst, 500, NewLogger())
	if err != nil {
		t.Fatalf("copyStatic failed: %v", err)
	}
	if files != 3 {
		t.Errorf("expected 3 files, got %d", files)
	}
	if written <= 0 {
		t.Error("expected bytes written")
	}
	if b, err := os.ReadFile(filepath.Join(dst, "broken.png")); err != nil || string(b) != "not a png" {
		t.Errorf("broken image should be copied unchanged: %q %v", b, err)
	}
	if b, err := os.ReadFile(filepath.Join(dst, "css", "site.css")); err != nil || string(b) != "body{}" {
		t.Errorf("css not copied: %q %v", b, err)
	}
	f, err := os.Open(filepath.Join(dst, "wide.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 500 {
		t.Errorf("expected width 500, got %d", cfg.Width)
	}
}
