package spritesheet

import (
	"bytes"
	"strings"
	"testing"
)

func TestHandleLookup(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	h := newHandle(data)
	defer h.Release()

	if !strings.HasPrefix(h.URL(), handleScheme) {
		t.Errorf("URL = %q, want %q prefix", h.URL(), handleScheme)
	}
	got, ok := Lookup(h.URL())
	if !ok {
		t.Fatal("Lookup failed for live handle")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Lookup = %v, want %v", got, data)
	}
}

func TestHandleRelease(t *testing.T) {
	h := newHandle([]byte("raster"))
	h.Release()
	if _, ok := Lookup(h.URL()); ok {
		t.Error("Lookup should fail after Release")
	}
	// Release is idempotent.
	h.Release()
}

func TestHandleURLsDistinct(t *testing.T) {
	a := newHandle(nil)
	b := newHandle(nil)
	defer a.Release()
	defer b.Release()
	if a.URL() == b.URL() {
		t.Error("handles must get distinct URLs")
	}
}

func TestHandleDataIndependent(t *testing.T) {
	data := []byte{1, 2, 3}
	h := newHandle(data)
	defer h.Release()

	data[0] = 9
	got, ok := Lookup(h.URL())
	if !ok {
		t.Fatal("Lookup failed for live handle")
	}
	if got[0] != 1 {
		t.Error("mutating the caller's slice must not change the registry entry")
	}
}

func TestHandleReleaseKeepsOthers(t *testing.T) {
	a := newHandle([]byte("a"))
	b := newHandle([]byte("b"))
	defer b.Release()

	a.Release()
	if _, ok := Lookup(b.URL()); !ok {
		t.Error("releasing one handle must not evict another")
	}
}
