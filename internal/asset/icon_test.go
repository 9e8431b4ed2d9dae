package asset

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func waitIcon(t *testing.T, ic *Icon) {
	t.Helper()
	select {
	case <-ic.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("icon %s did not finish loading", ic.Source())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star.png")
	writePNG(t, path)

	l := NewLoader()
	ic := l.Load(path)
	waitIcon(t, ic)

	if err := ic.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	img := ic.Image()
	if img == nil {
		t.Fatal("Image() = nil after successful load")
	}
	if got := img.Bounds().Dx(); got != 4 {
		t.Errorf("width = %d, want 4", got)
	}
}

func TestLoadCachesBySource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star.png")
	writePNG(t, path)

	l := NewLoader()
	if a, b := l.Load(path), l.Load(path); a != b {
		t.Error("Load returned different icons for the same source")
	}
}

func TestLoadMissingStaysEmpty(t *testing.T) {
	l := NewLoader()
	ic := l.Load(filepath.Join(t.TempDir(), "missing.png"))
	waitIcon(t, ic)

	if ic.Image() != nil {
		t.Error("Image() != nil for missing file")
	}
	if ic.Err() == nil {
		t.Error("Err() = nil for missing file")
	}
}

func TestLoadFromURL(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "star.png"))
	srv := httptest.NewServer(http.FileServer(http.Dir(dir)))
	defer srv.Close()

	l := NewLoader()
	ok := l.Load(srv.URL + "/star.png")
	missing := l.Load(srv.URL + "/nope.png")
	waitIcon(t, ok)
	waitIcon(t, missing)

	if ok.Image() == nil {
		t.Errorf("Image() = nil for served icon, err = %v", ok.Err())
	}
	if missing.Image() != nil || missing.Err() == nil {
		t.Error("404 icon should stay empty with an error")
	}
}

func TestNewIconIsReady(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	ic := NewIcon("inline", img)
	select {
	case <-ic.Done():
	default:
		t.Fatal("NewIcon not marked done")
	}
	if ic.Image() == nil {
		t.Error("Image() = nil for NewIcon")
	}
}
