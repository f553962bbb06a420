package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/go-fish/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the actions it triggers.
// Every non-quit key also triggers ActionAnyKey. Space both reels and
// confirms; the game decides which one the current phase listens to.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case " ":
		actions = append(actions, core.ActionReel, core.ActionConfirm)
	case "up", "w", "k":
		actions = append(actions, core.ActionReel)
	case "enter":
		actions = append(actions, core.ActionConfirm)
	case "b", "esc":
		actions = append(actions, core.ActionBack)
	case "r":
		actions = append(actions, core.ActionRestart)
	case "c":
		actions = append(actions, core.ActionToggleCheat)
	case "tab":
		actions = append(actions, core.ActionJournal)
	}

	return append(actions, core.ActionAnyKey), false
}

// IsReelKey reports whether the key feeds the reel hold tracker.
func (km *KeyMapper) IsReelKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case " ", "up", "w", "k":
		return true
	}
	return false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		if a != core.ActionNone {
			frame.Set(a)
		}
	}
	return isQuit
}

// MapMouse translates a mouse event. A left click confirms; pressing and
// releasing the left button starts and ends a reel hold.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame, hold *HoldTracker) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		frame.Set(core.ActionConfirm)
		frame.Set(core.ActionAnyKey)
		hold.PressMouse()
	case tea.MouseActionRelease:
		hold.ReleaseMouse()
	}
}
