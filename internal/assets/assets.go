// Package assets owns the decoded image table for the lobby.
// Images are addressed by stable handles assigned from the declared key order.
package assets

import (
	"context"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder for icon files
	"io"
	"io/fs"
	"os"
	"path"

	"golang.org/x/sync/errgroup"
)

//go:embed defaults/icons/*.png
var defaultIcons embed.FS

// Handle is an opaque identifier for a loaded image.
// Zero is the invalid sentinel.
type Handle uint32

// Invalid is the canonical "no asset" handle.
const Invalid Handle = 0

// Stable handles for the lobby icons. They match the position of the key
// in DefaultKeys (handle = index + 1).
const (
	CoinIcon Handle = 1
	AdsIcon  Handle = 2
)

// DefaultKeys lists the icon keys loaded at startup, in handle order.
var DefaultKeys = []string{"coin", "ads-icon"}

// Valid reports whether h refers to an asset slot.
func (h Handle) Valid() bool {
	return h != Invalid
}

// Image is a decoded asset and the handle it was stored under.
type Image struct {
	Key    string
	Handle Handle
	Img    image.Image
}

// Swatch returns the average colour of the opaque pixels.
// Used to draw icons as a single coloured cell in the terminal.
func (i Image) Swatch() color.RGBA {
	if i.Img == nil {
		return color.RGBA{}
	}
	b := i.Img.Bounds()
	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, ca := i.Img.At(x, y).RGBA()
			if ca < 0x8000 {
				continue
			}
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 0xff}
}

// Source opens the raw bytes of an asset by key.
type Source interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// FSSource resolves keys to icons/<key>.png inside an fs.FS.
type FSSource struct {
	FS fs.FS
}

// DefaultSource returns the embedded icon set.
func DefaultSource() FSSource {
	sub, err := fs.Sub(defaultIcons, "defaults")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return FSSource{FS: sub}
}

// DirSource reads icons from dir/icons/<key>.png.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

// Open implements Source.
func (s FSSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.FS.Open(path.Join("icons", key+".png"))
	if err != nil {
		return nil, fmt.Errorf("assets: open %q: %w", key, err)
	}
	return f, nil
}

// Store is the handle table. Lookups are a slice index.
// It is owned by the frame loop; async loads hand images over through Install.
type Store struct {
	images []Image
}

// NewStore creates an empty table.
func NewStore() *Store {
	return &Store{}
}

// Decode fetches and decodes every key concurrently. Handles follow the
// key order. The first failure cancels the rest and is returned; nothing is
// returned alongside it.
func Decode(ctx context.Context, src Source, keys []string) ([]Image, error) {
	loaded := make([]Image, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			img, err := decode(gctx, src, key)
			if err != nil {
				return err
			}
			loaded[i] = Image{Key: key, Handle: Handle(i + 1), Img: img}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// Preload decodes keys and installs them only when all of them succeed.
// The table is left untouched on failure.
func (s *Store) Preload(ctx context.Context, src Source, keys []string) error {
	images, err := Decode(ctx, src, keys)
	if err != nil {
		return err
	}
	s.Install(images)
	return nil
}

// Install replaces the table with images. images[i] must carry handle i+1.
// Must run on the goroutine that owns the store.
func (s *Store) Install(images []Image) {
	s.images = images
}

func decode(ctx context.Context, src Source, key string) (image.Image, error) {
	rc, err := src.Open(ctx, key)
	if err != nil {
		return nil, &KeyError{Key: key, Err: err}
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, &KeyError{Key: key, Err: err}
	}
	return img, nil
}

// Get returns the image stored under h.
func (s *Store) Get(h Handle) (Image, bool) {
	if !h.Valid() || int(h) > len(s.images) {
		return Image{}, false
	}
	return s.images[h-1], true
}

// Len returns the number of loaded images.
func (s *Store) Len() int {
	return len(s.images)
}

// Release drops every loaded image.
func (s *Store) Release() {
	s.images = nil
}

// KeyError reports which asset key failed to load.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("assets: load %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}
