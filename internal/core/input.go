package core

// Action is a semantic game action, abstracted from physical keys and mouse
// buttons.
type Action int

const (
	ActionNone        Action = iota
	ActionReel               // Space, Up, W, left mouse held - pull the catch bar up
	ActionConfirm            // Enter, Space, left click - play, strike, try again
	ActionBack               // B, Escape - exit to menu from the lose screen
	ActionRestart            // R - fresh fishing attempt at any time
	ActionToggleCheat        // C - toggle fast catch in the menu
	ActionAnyKey             // Any key press; dismisses the win screen
	ActionJournal            // Tab - open the catch journal from the menu
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionReel:
		return "Reel"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionToggleCheat:
		return "ToggleCheat"
	case ActionAnyKey:
		return "AnyKey"
	case ActionJournal:
		return "Journal"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
