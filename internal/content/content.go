// Package content loads the lobby's configuration blob and icon set and
// turns them into owned in-memory data.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
	"github.com/vovakirdan/tui-jigsaw/internal/config"
)

// Data is the configuration owned by the lobby. Immutable after construction.
type Data struct {
	sizes        []int
	initialScore int
}

// NewData copies cfg into an immutable Data.
func NewData(cfg config.GameConfig) *Data {
	sizes := make([]int, len(cfg.DifficultySizes))
	copy(sizes, cfg.DifficultySizes)
	return &Data{sizes: sizes, initialScore: cfg.InitialPlayerScore}
}

// Sizes returns a copy of the difficulty sizes.
func (d *Data) Sizes() []int {
	out := make([]int, len(d.sizes))
	copy(out, d.sizes)
	return out
}

// Size returns the difficulty size at index i.
func (d *Data) Size(i int) (int, bool) {
	if i < 0 || i >= len(d.sizes) {
		return 0, false
	}
	return d.sizes[i], true
}

// Len returns the number of difficulty sizes.
func (d *Data) Len() int {
	return len(d.sizes)
}

// InitialScore returns the configured starting score.
func (d *Data) InitialScore() int {
	return d.initialScore
}

// Player is the mutable player state.
type Player struct {
	Score int
}

// Result is a successfully loaded content set.
type Result struct {
	Data   *Data
	Player *Player
	Images []assets.Image // Decoded icons, installed by the loop owner
	Origin string         // Where the config blob came from
}

// Stage names the part of the load that failed.
type Stage string

const (
	StageConfig Stage = "config"
	StageAssets Stage = "assets"
)

// LoadError is returned for any failed load. Failures are all-or-nothing
// per load: nothing is kept when any request fails.
type LoadError struct {
	Stage Stage
	Key   string // Asset key, empty for config failures
	Err   error
}

func (e *LoadError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("content: %s %q: %v", e.Stage, e.Key, e.Err)
	}
	return fmt.Sprintf("content: %s: %v", e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// BlobSource opens the configuration blob.
type BlobSource func(ctx context.Context) (io.ReadCloser, error)

// Loader issues the configuration and asset requests.
type Loader struct {
	Config BlobSource
	Assets assets.Source
	Keys   []string
	Logger *log.Logger
}

// Load fetches the configuration, builds Data and Player, then decodes
// every asset key concurrently. It touches no shared state; the caller
// installs Result.Images. It returns a *LoadError on any failure,
// including a panic inside the pipeline.
func (l *Loader) Load(ctx context.Context) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = &LoadError{Stage: StageConfig, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	cfg, origin, err := l.loadConfig(ctx)
	if err != nil {
		return Result{}, err
	}
	l.logger().Debug("config loaded", "origin", origin, "sizes", cfg.DifficultySizes)

	res = Result{
		Data:   NewData(cfg),
		Player: &Player{Score: cfg.InitialPlayerScore},
		Origin: origin,
	}

	images, err := assets.Decode(ctx, l.Assets, l.Keys)
	if err != nil {
		le := &LoadError{Stage: StageAssets, Err: err}
		var keyErr *assets.KeyError
		if errors.As(err, &keyErr) {
			le.Key = keyErr.Key
			le.Err = keyErr.Err
		}
		return Result{}, le
	}
	res.Images = images
	l.logger().Debug("assets loaded", "count", len(images))

	return res, nil
}

// loadConfig reads and parses the blob. The handle is closed on every path.
func (l *Loader) loadConfig(ctx context.Context) (config.GameConfig, string, error) {
	rc, err := l.Config(ctx)
	if err != nil {
		return config.GameConfig{}, "", &LoadError{Stage: StageConfig, Err: err}
	}
	defer rc.Close()

	origin := "unknown"
	if blob, ok := rc.(*config.Blob); ok {
		origin = blob.Origin
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		return config.GameConfig{}, origin, &LoadError{Stage: StageConfig, Err: err}
	}
	cfg, err := config.Parse(data)
	if err != nil {
		return config.GameConfig{}, origin, &LoadError{Stage: StageConfig, Err: err}
	}
	return cfg, origin, nil
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.Default()
	}
	return l.Logger
}
