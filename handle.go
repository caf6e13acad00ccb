package spritesheet

import (
	"sync"

	"github.com/google/uuid"
)

// handleScheme prefixes every handle URL.
const handleScheme = "mem://sheet/"

// registry maps handle URLs to their raster bytes. Handles exist so a
// caller can pass a dereferenceable URL to consumers that expect one, and
// so superseded rasters can be released instead of accumulating across
// repeated regenerations.
var registry = struct {
	sync.Mutex
	m map[string][]byte
}{m: make(map[string][]byte)}

// Handle is a releasable reference to an encoded raster held in the
// in-process registry.
type Handle struct {
	url string

	mu       sync.Mutex
	released bool
}

// newHandle registers a copy of data and returns its handle. Copying
// keeps the registry entry stable even if the caller later mutates the
// original slice.
func newHandle(data []byte) *Handle {
	h := &Handle{url: handleScheme + uuid.New().String()}
	registry.Lock()
	registry.m[h.url] = append([]byte(nil), data...)
	registry.Unlock()
	return h
}

// URL returns the handle's dereferenceable URL.
func (h *Handle) URL() string {
	return h.url
}

// Release removes the raster from the registry. Release is idempotent;
// it must be called once the handle's sheet has been superseded.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return
	}
	h.released = true
	registry.Lock()
	delete(registry.m, h.url)
	registry.Unlock()
}

// Lookup dereferences a handle URL to its raster bytes. The second result
// reports whether the URL is live.
func Lookup(url string) ([]byte, bool) {
	registry.Lock()
	data, ok := registry.m[url]
	registry.Unlock()
	return data, ok
}
