package command

import (
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[Command]()

	// Enough entries to force the ring to grow more than once
	const n = 100
	for i := 0; i < n; i++ {
		q.Enqueue(ScoreUpdate(i))
	}
	if q.Len() != n {
		t.Fatalf("Expected Len()=%d, got %d", n, q.Len())
	}

	for i := 0; i < n; i++ {
		cmd, ok := q.TryDequeue()
		if !ok {
			t.Fatalf("TryDequeue() #%d reported empty", i)
		}
		if cmd.Value != i {
			t.Fatalf("Dequeue #%d: expected value %d, got %d", i, i, cmd.Value)
		}
	}

	if _, ok := q.TryDequeue(); ok {
		t.Error("TryDequeue() on drained queue should report empty")
	}
}

func TestQueueEmptyDoesNotMutate(t *testing.T) {
	q := NewQueue[Command]()

	for i := 0; i < 3; i++ {
		if _, ok := q.TryDequeue(); ok {
			t.Fatal("TryDequeue() on empty queue should report empty")
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected Len()=0, got %d", q.Len())
	}

	q.Enqueue(Visibility(PuzzleStartView, true))
	cmd, ok := q.TryDequeue()
	if !ok || cmd.Kind != SetVisibility || !cmd.Visible() {
		t.Errorf("Unexpected command after empty polls: %+v ok=%v", cmd, ok)
	}
}

func TestQueueInterleaved(t *testing.T) {
	q := NewQueue[int]()
	next := 0
	want := 0

	// Interleave so head wraps around the ring boundary
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < 5; i++ {
			v, ok := q.TryDequeue()
			if !ok {
				t.Fatalf("round %d: unexpected empty", round)
			}
			if v != want {
				t.Fatalf("round %d: expected %d, got %d", round, want, v)
			}
			want++
		}
	}
	for {
		v, ok := q.TryDequeue()
		if !ok {
			break
		}
		if v != want {
			t.Fatalf("tail: expected %d, got %d", want, v)
		}
		want++
	}
	if want != next {
		t.Errorf("Dequeued %d values, enqueued %d", want, next)
	}
}

func TestQueueNoCoalescing(t *testing.T) {
	q := NewQueue[Command]()
	q.Enqueue(ScoreUpdate(5))
	q.Enqueue(ScoreUpdate(5))

	if q.Len() != 2 {
		t.Errorf("Duplicate commands must both be kept, Len()=%d", q.Len())
	}
}

func TestQueueDispose(t *testing.T) {
	q := NewQueue[Command]()
	q.Enqueue(ScoreUpdate(1))
	q.Dispose()

	if q.Created() {
		t.Error("Created() should be false after Dispose()")
	}
	if _, ok := q.TryDequeue(); ok {
		t.Error("Disposed queue should be empty")
	}

	q.Enqueue(ScoreUpdate(2))
	if q.Len() != 0 {
		t.Errorf("Enqueue after Dispose should be dropped, Len()=%d", q.Len())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want Command
	}{
		{"score", ScoreUpdate(42), Command{Kind: UpdateScore, Element: PlayerScore, Value: 42}},
		{"icon", IconChange(PlayButtonIcon, assets.AdsIcon), Command{Kind: ChangeIcon, Element: PlayButtonIcon, Asset: assets.AdsIcon}},
		{"show", Visibility(PuzzlePictureView, true), Command{Kind: SetVisibility, Element: PuzzlePictureView, Flags: FlagVisible}},
		{"hide", Visibility(PuzzleStartView, false), Command{Kind: SetVisibility, Element: PuzzleStartView}},
		{"difficulty", DifficultySelectionChange(3), Command{Kind: DifficultySelection, Element: DifficultyContainer, Value: 3}},
		{"play", PlayClicked(100), Command{Kind: PlayButtonClicked, Element: PlayButton, Value: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd != tt.want {
				t.Errorf("got %+v, want %+v", tt.cmd, tt.want)
			}
		})
	}

	if !PlayButtonClicked.IsAction() || UpdateScore.IsAction() {
		t.Error("IsAction() misclassifies kinds")
	}
}
