// Package loop is the host's cooperative frame scheduler. Callbacks are
// registered under a named stage and run once per frame in stage order.
package loop

// Stage defines execution ordering within a single frame.
type Stage int

const (
	StageInitialization Stage = iota // 0: time, input polling
	StageEarlyUpdate                 // 1: async completions handed back to the loop
	StageFixedUpdate                 // 2: fixed-step simulation
	StagePreUpdate                   // 3: input routing
	StageUpdate                      // 4: game logic
	StagePreLateUpdate               // 5: animation, layout
	StagePostLateUpdate              // 6: rendering hand-off
)

// StageCount is the number of stages.
const StageCount = 7

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageInitialization:
		return "Initialization"
	case StageEarlyUpdate:
		return "EarlyUpdate"
	case StageFixedUpdate:
		return "FixedUpdate"
	case StagePreUpdate:
		return "PreUpdate"
	case StageUpdate:
		return "Update"
	case StagePreLateUpdate:
		return "PreLateUpdate"
	case StagePostLateUpdate:
		return "PostLateUpdate"
	default:
		return "Unknown"
	}
}

// SystemID identifies a registered callback.
type SystemID string

type entry struct {
	id SystemID
	fn func()
}

// Scheduler executes registered callbacks in stage order each frame.
// It is driven from the frame loop goroutine only.
type Scheduler struct {
	stages [StageCount][]entry
	ticks  uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends fn at the end of stage. It returns false and changes
// nothing if id is already registered in that stage.
func (s *Scheduler) Register(stage Stage, id SystemID, fn func()) bool {
	if !validStage(stage) || fn == nil {
		return false
	}
	if s.index(stage, id) >= 0 {
		return false
	}
	s.stages[stage] = append(s.stages[stage], entry{id: id, fn: fn})
	return true
}

// Unregister removes the entry matching id from stage, keeping the order
// of the others. It returns false when id is not registered.
func (s *Scheduler) Unregister(stage Stage, id SystemID) bool {
	if !validStage(stage) {
		return false
	}
	i := s.index(stage, id)
	if i < 0 {
		return false
	}

	// Copy so a snapshot taken by a running Tick is not disturbed
	old := s.stages[stage]
	next := make([]entry, 0, len(old)-1)
	next = append(next, old[:i]...)
	next = append(next, old[i+1:]...)
	s.stages[stage] = next
	return true
}

// Registered reports whether id is registered in stage.
func (s *Scheduler) Registered(stage Stage, id SystemID) bool {
	return validStage(stage) && s.index(stage, id) >= 0
}

// Systems returns the ids registered in stage, in run order.
func (s *Scheduler) Systems(stage Stage) []SystemID {
	if !validStage(stage) {
		return nil
	}
	ids := make([]SystemID, len(s.stages[stage]))
	for i, e := range s.stages[stage] {
		ids[i] = e.id
	}
	return ids
}

// Tick runs one frame. Each stage runs over the entries present when the
// stage starts, so callbacks may register or unregister safely.
func (s *Scheduler) Tick() {
	s.ticks++
	for st := range s.stages {
		for _, e := range s.stages[st] {
			e.fn()
		}
	}
}

// Ticks returns the number of frames run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (s *Scheduler) index(stage Stage, id SystemID) int {
	for i, e := range s.stages[stage] {
		if e.id == id {
			return i
		}
	}
	return -1
}

func validStage(stage Stage) bool {
	return stage >= 0 && stage < StageCount
}
