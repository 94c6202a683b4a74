package game

import (
	"github.com/vovakirdan/tui-jigsaw/internal/assets"
	"github.com/vovakirdan/tui-jigsaw/internal/command"
)

// Per-frame limits and score schedule.
const (
	MaxActionsPerTick  = 16
	MaxUpdatesPerTick  = 64
	ScoreRefreshPeriod = 500  // Frames between score refreshes
	ScoreRange         = 2000 // Refreshed score is in [0, ScoreRange)
	AdsThreshold       = 1000 // Scores below show the ads icon
)

// Tick runs one frame: advance the counter, refresh the score when due,
// then drain both queues up to their per-frame limits.
func (r *Root) Tick() {
	if r.closed {
		return
	}

	r.frame++ // wraps
	if r.scheduled && r.frame%ScoreRefreshPeriod == 0 {
		r.refreshScore()
	}

	if r.actions.Created() {
		for i := 0; i < MaxActionsPerTick; i++ {
			cmd, ok := r.actions.TryDequeue()
			if !ok {
				break
			}
			r.handleAction(cmd)
		}
	}

	if r.updates.Created() && r.surface != nil {
		for i := 0; i < MaxUpdatesPerTick; i++ {
			cmd, ok := r.updates.TryDequeue()
			if !ok {
				break
			}
			r.surface.ProcessUpdate(cmd)
		}
	}
}

func (r *Root) refreshScore() {
	if r.player == nil {
		return
	}
	score := r.rng.Intn(ScoreRange)
	r.player.Score = score

	r.EnqueueUIUpdate(command.ScoreUpdate(score))
	r.EnqueueUIUpdate(command.IconChange(command.PlayButtonIcon, iconFor(score)))
	r.logger.Debug("score refreshed", "score", score, "frame", r.frame)
}

// iconFor picks the play button icon for score.
func iconFor(score int) assets.Handle {
	if score < AdsThreshold {
		return assets.AdsIcon
	}
	return assets.CoinIcon
}

func (r *Root) handleAction(cmd command.Command) {
	if !cmd.Kind.IsAction() {
		r.logger.Warn("ui update on action queue", "kind", cmd.Kind)
		return
	}
	switch cmd.Kind {
	case command.PlayButtonClicked:
		r.play(cmd)
	default:
		r.logger.Warn("unknown action", "kind", cmd.Kind)
	}
}

// play handles a play request. Only the start view is hidden; nothing
// else is shown in its place yet.
func (r *Root) play(cmd command.Command) {
	if r.data == nil || r.surface == nil {
		return
	}

	index := r.surface.SelectedDifficulty()
	size, ok := r.data.Size(index)
	if !ok {
		r.logger.Warn("play with invalid difficulty", "index", index)
		return
	}
	r.logger.Info("play requested", "index", index, "size", size, "clicked", cmd.Value)

	if r.recorder != nil {
		score := 0
		if r.player != nil {
			score = r.player.Score
		}
		if _, err := r.recorder.RecordPlay(index, size, score); err != nil {
			r.logger.Error("record play", "error", err)
		}
	}

	r.EnqueueUIUpdate(command.Visibility(command.PuzzleStartView, false))
}
