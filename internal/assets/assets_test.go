package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	return buf.Bytes()
}

// countingSource wraps a Source and tracks open readers.
type countingSource struct {
	inner  Source
	opened atomic.Int32
	closed atomic.Int32
}

type countingReader struct {
	io.ReadCloser
	src *countingSource
}

func (r countingReader) Close() error {
	r.src.closed.Add(1)
	return r.ReadCloser.Close()
}

func (s *countingSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.inner.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	s.opened.Add(1)
	return countingReader{ReadCloser: rc, src: s}, nil
}

func TestDefaultSourcePreload(t *testing.T) {
	store := NewStore()
	if err := store.Preload(context.Background(), DefaultSource(), DefaultKeys); err != nil {
		t.Fatalf("Preload() failed: %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("Expected 2 images, got %d", store.Len())
	}

	coin, ok := store.Get(CoinIcon)
	if !ok || coin.Key != "coin" {
		t.Errorf("CoinIcon resolved to %+v, ok=%v", coin, ok)
	}
	ads, ok := store.Get(AdsIcon)
	if !ok || ads.Key != "ads-icon" {
		t.Errorf("AdsIcon resolved to %+v, ok=%v", ads, ok)
	}
}

func TestPreloadAssignsHandlesByKeyOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"icons/a.png": {Data: pngBytes(t, color.RGBA{R: 255, A: 255})},
		"icons/b.png": {Data: pngBytes(t, color.RGBA{G: 255, A: 255})},
		"icons/c.png": {Data: pngBytes(t, color.RGBA{B: 255, A: 255})},
	}
	src := &countingSource{inner: FSSource{FS: fsys}}

	store := NewStore()
	if err := store.Preload(context.Background(), src, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("Preload() failed: %v", err)
	}

	for i, key := range []string{"a", "b", "c"} {
		img, ok := store.Get(Handle(i + 1))
		if !ok {
			t.Fatalf("Get(%d) not found", i+1)
		}
		if img.Key != key {
			t.Errorf("Handle %d: expected key %q, got %q", i+1, key, img.Key)
		}
	}

	if src.opened.Load() != src.closed.Load() {
		t.Errorf("Readers leaked: opened %d, closed %d", src.opened.Load(), src.closed.Load())
	}

	swatch := mustGet(t, store, 2).Swatch()
	if swatch.G != 255 || swatch.R != 0 {
		t.Errorf("Unexpected swatch for b: %+v", swatch)
	}
}

func mustGet(t *testing.T, s *Store, h Handle) Image {
	t.Helper()
	img, ok := s.Get(h)
	if !ok {
		t.Fatalf("Get(%d) not found", h)
	}
	return img
}

func TestPreloadAllOrNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"icons/coin.png": {Data: pngBytes(t, color.RGBA{R: 200, A: 255})},
	}
	src := &countingSource{inner: FSSource{FS: fsys}}

	store := NewStore()
	err := store.Preload(context.Background(), src, []string{"coin", "ads-icon"})
	if err == nil {
		t.Fatal("Expected error for missing key")
	}

	var keyErr *KeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("Expected *KeyError, got %T", err)
	}
	if keyErr.Key != "ads-icon" {
		t.Errorf("Expected failing key ads-icon, got %q", keyErr.Key)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist in chain, got %v", err)
	}

	if store.Len() != 0 {
		t.Errorf("Expected empty table after failure, got %d images", store.Len())
	}
	if src.opened.Load() != src.closed.Load() {
		t.Errorf("Readers leaked: opened %d, closed %d", src.opened.Load(), src.closed.Load())
	}
}

func TestPreloadCorruptImage(t *testing.T) {
	fsys := fstest.MapFS{
		"icons/coin.png": {Data: []byte("not a png")},
	}

	store := NewStore()
	if err := store.Preload(context.Background(), FSSource{FS: fsys}, []string{"coin"}); err == nil {
		t.Fatal("Expected decode error")
	}
}

func TestGetInvalidHandle(t *testing.T) {
	store := NewStore()
	if err := store.Preload(context.Background(), DefaultSource(), DefaultKeys); err != nil {
		t.Fatalf("Preload() failed: %v", err)
	}

	tests := []struct {
		name string
		h    Handle
	}{
		{"zero", Invalid},
		{"past end", Handle(3)},
		{"large", Handle(1 << 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := store.Get(tt.h); ok {
				t.Errorf("Get(%d) should not resolve", tt.h)
			}
		})
	}
}

func TestRelease(t *testing.T) {
	store := NewStore()
	if err := store.Preload(context.Background(), DefaultSource(), DefaultKeys); err != nil {
		t.Fatalf("Preload() failed: %v", err)
	}
	store.Release()

	if _, ok := store.Get(CoinIcon); ok {
		t.Error("Get() should fail after Release()")
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore()
	err := store.Preload(ctx, DefaultSource(), DefaultKeys)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
