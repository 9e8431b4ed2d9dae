// Package asset loads the images used as confetti icons.
package asset

import (
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	// Registered image decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Icon is an image that becomes available once its background load completes.
type Icon struct {
	src   string
	img   atomic.Pointer[image.Image]
	err   atomic.Pointer[error]
	ready chan struct{}
}

// NewIcon wraps an already decoded image.
func NewIcon(src string, img image.Image) *Icon {
	ic := &Icon{src: src, ready: make(chan struct{})}
	ic.img.Store(&img)
	close(ic.ready)
	return ic
}

// Source returns the path or URL the icon was loaded from.
func (ic *Icon) Source() string { return ic.src }

// Image returns the decoded image, or nil while loading or after a failure.
func (ic *Icon) Image() image.Image {
	if p := ic.img.Load(); p != nil {
		return *p
	}
	return nil
}

// Err returns the load failure, if any.
func (ic *Icon) Err() error {
	if p := ic.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Done is closed when loading has finished, successfully or not.
func (ic *Icon) Done() <-chan struct{} { return ic.ready }

// Loader fetches icons in the background and caches them by source.
type Loader struct {
	client *http.Client
	mu     sync.Mutex
	cache  map[string]*Icon
}

// NewLoader creates a loader with a 10 second HTTP timeout.
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  make(map[string]*Icon),
	}
}

// Load returns the icon for src, starting its load on first use. The returned
// icon is never nil; it stays empty if the load fails.
func (l *Loader) Load(src string) *Icon {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ic, ok := l.cache[src]; ok {
		return ic
	}
	ic := &Icon{src: src, ready: make(chan struct{})}
	l.cache[src] = ic

	go func() {
		defer close(ic.ready)
		img, err := l.fetch(src)
		if err != nil {
			log.Printf("[asset] icon %s unavailable: %v", src, err)
			ic.err.Store(&err)
			return
		}
		ic.img.Store(&img)
	}()
	return ic
}

func (l *Loader) fetch(src string) (image.Image, error) {
	rc, err := l.open(src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", src, err)
	}
	return img, nil
}

func (l *Loader) open(src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := l.client.Get(src)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to fetch %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", src, err)
	}
	return f, nil
}
