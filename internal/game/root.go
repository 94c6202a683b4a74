// Package game owns the lobby lifecycle: it funnels async completions into
// the readiness machine, dispatches queued commands once per frame and
// refreshes the displayed score.
package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
	"github.com/vovakirdan/tui-jigsaw/internal/command"
	"github.com/vovakirdan/tui-jigsaw/internal/content"
	"github.com/vovakirdan/tui-jigsaw/internal/loop"
	"github.com/vovakirdan/tui-jigsaw/internal/phase"
	"github.com/vovakirdan/tui-jigsaw/internal/ui"
)

// SystemID is the id the per-frame callback is registered under.
const SystemID loop.SystemID = "game.Root"

// ErrUISurfaceMissing is reported when the scene has no GameUI document.
var ErrUISurfaceMissing = errors.New("game: ui document not found")

// Projection is the UI surface the lobby drives.
type Projection interface {
	RegisterElements(doc *ui.Document, sizes []int, sink ui.Sink)
	ProcessUpdate(cmd command.Command)
	SelectedDifficulty() int
	Cleanup()
}

// Random supplies score values.
type Random interface {
	Intn(n int) int
}

// Recorder journals play requests.
type Recorder interface {
	RecordPlay(index, size, score int) (int64, error)
}

// Loader fetches configuration and assets.
type Loader interface {
	Load(ctx context.Context) (content.Result, error)
}

// LoadTask runs a content load. The host runs it off the frame loop and
// hands the result back through CompleteLoad.
type LoadTask func(ctx context.Context) (content.Result, error)

// Options configures a Root.
type Options struct {
	Scheduler *loop.Scheduler
	Surface   Projection
	Rand      Random        // nil = time seeded
	Recorder  Recorder      // optional
	Assets    *assets.Store // released on shutdown
	Logger    *log.Logger
}

// Root is the lobby's owning context.
// Every method except the returned LoadTask runs on the frame loop.
type Root struct {
	scheduler *loop.Scheduler
	surface   Projection
	rng       Random
	recorder  Recorder
	assets    *assets.Store
	logger    *log.Logger

	machine *phase.Machine
	actions *command.Queue[command.Command]
	updates *command.Queue[command.Command]

	data   *content.Data
	player *content.Player
	doc    *ui.Document

	frame     uint32
	scheduled bool // Score refresh runs once ready

	initialized bool
	closed      bool
}

// New creates a Root in the Start phase.
func New(opts Options) *Root {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	r := &Root{
		scheduler: opts.Scheduler,
		surface:   opts.Surface,
		rng:       rng,
		recorder:  opts.Recorder,
		assets:    opts.Assets,
		logger:    logger.WithPrefix("game"),
	}
	r.machine = phase.NewMachine(r.onReady, r.onFailed)
	return r
}

// Initialize creates both command queues, registers the per-frame
// callback and returns the content load task.
// It returns nil when called twice or after Shutdown.
func (r *Root) Initialize(loader Loader) LoadTask {
	if r.initialized || r.closed {
		return nil
	}
	r.initialized = true

	r.actions = command.NewQueue[command.Command]()
	r.updates = command.NewQueue[command.Command]()

	if r.scheduler != nil {
		if !r.scheduler.Register(loop.StageUpdate, SystemID, r.Tick) {
			r.logger.Warn("already registered", "stage", loop.StageUpdate, "id", SystemID)
		}
	}

	return func(ctx context.Context) (content.Result, error) {
		return loader.Load(ctx)
	}
}

// CompleteLoad records the outcome of the load task and installs the
// decoded images. After Shutdown the result is dropped.
func (r *Root) CompleteLoad(res content.Result, err error) {
	if r.closed {
		return
	}
	if r.machine.Config() != phase.Pending {
		r.logger.Warn("config outcome ignored", "error", phase.ErrAlreadyReported)
		return
	}

	ok := err == nil && res.Data != nil && res.Player != nil
	if ok {
		r.data = res.Data
		r.player = res.Player
		if r.assets != nil {
			r.assets.Install(res.Images)
		}
		r.logger.Info("content loaded", "origin", res.Origin, "sizes", res.Data.Len())
	} else {
		r.data = nil
		r.player = nil
		r.logger.Error("content load failed", "error", err)
	}

	if rerr := r.machine.ReportConfig(ok); rerr != nil {
		r.logger.Warn("config outcome ignored", "error", rerr)
	}
}

// AttachUI resolves the GameUI document in scene. A nil scene or one
// without the document marks the UI surface as failed.
func (r *Root) AttachUI(scene *ui.Scene) {
	if r.closed {
		return
	}
	if r.machine.UI() != phase.Pending {
		r.logger.Warn("ui outcome ignored", "error", phase.ErrAlreadyReported)
		return
	}

	doc := scene.Find(ui.GameUIDocument)
	if doc == nil {
		r.logger.Error("ui surface missing", "document", ui.GameUIDocument, "error", ErrUISurfaceMissing)
	}
	r.doc = doc

	if err := r.machine.ReportUI(doc != nil); err != nil {
		r.logger.Warn("ui outcome ignored", "error", err)
	}
}

func (r *Root) onReady() {
	r.logger.Info("lobby ready")

	if r.surface != nil {
		r.surface.RegisterElements(r.doc, r.data.Sizes(), r)
	}

	r.EnqueueUIUpdate(command.IconChange(command.PlayerScoreIcon, assets.CoinIcon))
	r.EnqueueUIUpdate(command.Visibility(command.PuzzlePictureView, true))
	r.EnqueueUIUpdate(command.Visibility(command.PuzzleStartView, true))
	r.EnqueueUIUpdate(command.ScoreUpdate(r.player.Score))

	r.frame = 0
	r.scheduled = true
}

func (r *Root) onFailed(p phase.Phase) {
	r.logger.Error("lobby failed", "phase", p)
}

// EnqueueUIUpdate queues a system->UI command for the next frame.
func (r *Root) EnqueueUIUpdate(cmd command.Command) {
	if !r.updates.Created() {
		return
	}
	r.updates.Enqueue(cmd)
}

// EnqueueUserAction queues a UI->system command for the next frame.
func (r *Root) EnqueueUserAction(cmd command.Command) {
	if !r.actions.Created() {
		return
	}
	r.actions.Enqueue(cmd)
}

// Phase returns the readiness phase.
func (r *Root) Phase() phase.Phase {
	return r.machine.Phase()
}

// Data returns the loaded configuration, or nil.
func (r *Root) Data() *content.Data {
	return r.data
}

// Player returns the player state, or nil.
func (r *Root) Player() *content.Player {
	return r.player
}

// Frame returns the frame counter.
func (r *Root) Frame() uint32 {
	return r.frame
}

// Pending returns the queued action and update counts.
func (r *Root) Pending() (actions, updates int) {
	if r.actions != nil {
		actions = r.actions.Len()
	}
	if r.updates != nil {
		updates = r.updates.Len()
	}
	return actions, updates
}

// Closed reports whether Shutdown has run.
func (r *Root) Closed() bool {
	return r.closed
}

// Shutdown unregisters the frame callback and releases everything the
// lobby owns. Safe to call more than once.
func (r *Root) Shutdown() {
	if r.closed {
		return
	}
	r.closed = true
	r.scheduled = false

	if r.scheduler != nil {
		r.scheduler.Unregister(loop.StageUpdate, SystemID)
	}

	r.data = nil
	r.player = nil
	r.doc = nil

	if r.actions.Created() {
		r.actions.Dispose()
	}
	if r.updates.Created() {
		r.updates.Dispose()
	}
	if r.surface != nil {
		r.surface.Cleanup()
	}
	if r.assets != nil {
		r.assets.Release()
	}

	r.logger.Debug("shutdown complete")
}
