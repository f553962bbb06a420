package tui

import "time"

// HoldTracker turns key presses into a "held" state. Terminals report key
// repeats but never key releases, so a reel key counts as held for a short
// window after each press. The first press gets a longer window to bridge
// the terminal's initial repeat delay. Mouse buttons do report releases and
// are tracked exactly.
type HoldTracker struct {
	window  time.Duration
	initial time.Duration

	lastPress  time.Time
	holdUntil  time.Time
	mouseDown  bool
	everPushed bool
}

// initialWindowFactor scales the repeat window for the first press.
const initialWindowFactor = 3

// NewHoldTracker creates a tracker with the given repeat window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = 150 * time.Millisecond
	}
	return &HoldTracker{
		window:  window,
		initial: window * initialWindowFactor,
	}
}

// Press records a reel key press or repeat at now.
func (h *HoldTracker) Press(now time.Time) {
	if !h.everPushed || now.Sub(h.lastPress) > h.window {
		h.holdUntil = now.Add(h.initial)
	} else {
		h.holdUntil = now.Add(h.window)
	}
	h.lastPress = now
	h.everPushed = true
}

// PressMouse starts a mouse hold.
func (h *HoldTracker) PressMouse() { h.mouseDown = true }

// ReleaseMouse ends a mouse hold.
func (h *HoldTracker) ReleaseMouse() { h.mouseDown = false }

// Held reports whether reeling is active at now.
func (h *HoldTracker) Held(now time.Time) bool {
	if h.mouseDown {
		return true
	}
	return h.everPushed && now.Before(h.holdUntil)
}

// Reset forgets all key and mouse state.
func (h *HoldTracker) Reset() {
	*h = HoldTracker{window: h.window, initial: h.initial}
}
