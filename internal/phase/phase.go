// Package phase tracks readiness of the two asynchronously initialised
// subsystems (configuration content and UI surface) and derives the
// combined lobby phase from them.
package phase

import "errors"

// Phase is the combined readiness state.
type Phase uint8

const (
	Start Phase = iota
	ConfigLoaded
	UILoaded
	Ready
	ConfigFailed
	UIFailed
	Failed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Start:
		return "Start"
	case ConfigLoaded:
		return "ConfigLoaded"
	case UILoaded:
		return "UILoaded"
	case Ready:
		return "Ready"
	case ConfigFailed:
		return "ConfigFailed"
	case UIFailed:
		return "UIFailed"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Failed reports whether p belongs to the failure family.
// Failure-family phases never revert to a non-failure phase.
func (p Phase) Failed() bool {
	return p >= ConfigFailed
}

// Terminal reports whether no further phase change is possible.
func (p Phase) Terminal() bool {
	return p == Ready || p == Failed
}

// Outcome is the completion state of one subsystem.
type Outcome uint8

const (
	Pending Outcome = iota
	Success
	Failure
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "Pending"
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Compute derives the phase from both outcomes. It depends only on its
// arguments, so the result is independent of report order.
func Compute(config, ui Outcome) Phase {
	switch {
	case config == Failure && ui == Failure:
		return Failed
	case config == Failure:
		return ConfigFailed
	case ui == Failure:
		return UIFailed
	}

	p := Start
	if config == Success {
		p |= ConfigLoaded
	}
	if ui == Success {
		p |= UILoaded
	}
	return p
}

// ErrAlreadyReported is returned when a subsystem reports a second time.
var ErrAlreadyReported = errors.New("phase: outcome already reported")

// Machine records subsystem outcomes and fires hooks on phase changes.
// It is driven from a single goroutine (the frame loop).
type Machine struct {
	config Outcome
	ui     Outcome
	phase  Phase
	ready  bool

	onReady  func()
	onFailed func(Phase)
}

// NewMachine creates a machine in the Start phase.
// onReady runs exactly once, on the transition into Ready.
// onFailed runs whenever the phase changes to a failure-family value.
// Either hook may be nil.
func NewMachine(onReady func(), onFailed func(Phase)) *Machine {
	return &Machine{onReady: onReady, onFailed: onFailed}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Config returns the configuration outcome.
func (m *Machine) Config() Outcome {
	return m.config
}

// UI returns the UI surface outcome.
func (m *Machine) UI() Outcome {
	return m.ui
}

// ReportConfig records the configuration outcome.
func (m *Machine) ReportConfig(ok bool) error {
	if m.config != Pending {
		return ErrAlreadyReported
	}
	m.config = outcomeOf(ok)
	m.update()
	return nil
}

// ReportUI records the UI surface outcome.
func (m *Machine) ReportUI(ok bool) error {
	if m.ui != Pending {
		return ErrAlreadyReported
	}
	m.ui = outcomeOf(ok)
	m.update()
	return nil
}

func outcomeOf(ok bool) Outcome {
	if ok {
		return Success
	}
	return Failure
}

// update recomputes the phase from both outcomes and fires hooks.
func (m *Machine) update() {
	prev := m.phase
	if prev.Terminal() {
		return
	}
	m.phase = Compute(m.config, m.ui)

	if m.phase == prev {
		return
	}
	if m.phase.Failed() {
		if m.onFailed != nil {
			m.onFailed(m.phase)
		}
		return
	}
	if m.phase == Ready && !m.ready {
		m.ready = true
		if m.onReady != nil {
			m.onReady()
		}
	}
}
