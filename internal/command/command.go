// Package command defines the fixed-shape records exchanged between the
// lobby core and the UI projection, and the FIFO queue that carries them.
package command

import (
	"fmt"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
)

// EventKind identifies what a Command asks for.
// Kinds below ActionBase flow core -> UI, kinds at or above it flow UI -> core.
type EventKind uint8

const (
	UpdateScore         EventKind = 0 // set score label text
	ChangeIcon          EventKind = 1 // swap an element's icon
	SetVisibility       EventKind = 2 // show/hide an element
	DifficultySelection EventKind = 3 // move the difficulty highlight

	PlayButtonClicked EventKind = 100 // user asked to start a puzzle
)

// ActionBase is the first user-action kind.
const ActionBase EventKind = 100

// IsAction reports whether k belongs to the UI -> core family.
func (k EventKind) IsAction() bool {
	return k >= ActionBase
}

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case UpdateScore:
		return "UpdateScore"
	case ChangeIcon:
		return "ChangeIcon"
	case SetVisibility:
		return "SetVisibility"
	case DifficultySelection:
		return "DifficultySelection"
	case PlayButtonClicked:
		return "PlayButtonClicked"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// ElementID names a UI element slot.
type ElementID uint8

const (
	PlayerScore ElementID = iota
	PlayButtonIcon
	PlayButton
	PuzzlePictureView
	PuzzleStartView
	DifficultyContainer
	PlayerScoreIcon
)

// ElementCount is the number of element slots.
const ElementCount = 7

// String returns a human-readable name for the element.
func (e ElementID) String() string {
	switch e {
	case PlayerScore:
		return "PlayerScore"
	case PlayButtonIcon:
		return "PlayButtonIcon"
	case PlayButton:
		return "PlayButton"
	case PuzzlePictureView:
		return "PuzzlePictureView"
	case PuzzleStartView:
		return "PuzzleStartView"
	case DifficultyContainer:
		return "DifficultyContainer"
	case PlayerScoreIcon:
		return "PlayerScoreIcon"
	default:
		return fmt.Sprintf("ElementID(%d)", uint8(e))
	}
}

// FlagVisible is set on SetVisibility commands that show the element.
const FlagVisible uint8 = 1

// Command is one UI mutation or one user action. It is copied by value
// into and out of queues.
type Command struct {
	Kind    EventKind
	Element ElementID
	Value   int
	Asset   assets.Handle
	Flags   uint8
}

// Visible reports the visibility carried by a SetVisibility command.
func (c Command) Visible() bool {
	return c.Flags&FlagVisible != 0
}

// ScoreUpdate builds a score label update.
func ScoreUpdate(score int) Command {
	return Command{Kind: UpdateScore, Element: PlayerScore, Value: score}
}

// IconChange builds an icon swap for the given element.
func IconChange(el ElementID, h assets.Handle) Command {
	return Command{Kind: ChangeIcon, Element: el, Asset: h}
}

// Visibility builds a show/hide command.
func Visibility(el ElementID, visible bool) Command {
	var flags uint8
	if visible {
		flags = FlagVisible
	}
	return Command{Kind: SetVisibility, Element: el, Flags: flags}
}

// DifficultySelectionChange builds a highlight move to index.
func DifficultySelectionChange(index int) Command {
	return Command{Kind: DifficultySelection, Element: DifficultyContainer, Value: index}
}

// PlayClicked builds the user action raised by the play button.
// size is the difficulty size selected at click time.
func PlayClicked(size int) Command {
	return Command{Kind: PlayButtonClicked, Element: PlayButton, Value: size}
}
