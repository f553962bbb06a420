package tui

import (
	"testing"
	"time"
)

func TestHoldTracker(t *testing.T) {
	const window = 100 * time.Millisecond
	start := time.Unix(1000, 0)
	ms := func(n int) time.Time { return start.Add(time.Duration(n) * time.Millisecond) }

	h := NewHoldTracker(window)
	if h.Held(start) {
		t.Fatal("fresh tracker should not be held")
	}

	// First press bridges the initial repeat delay.
	h.Press(ms(0))
	if !h.Held(ms(250)) {
		t.Error("first press should hold for the initial window")
	}
	if h.Held(ms(300)) {
		t.Error("first press should expire after the initial window")
	}

	// Repeats inside the window extend by one window.
	h.Press(ms(290))
	h.Press(ms(320))
	h.Press(ms(350))
	if !h.Held(ms(440)) {
		t.Error("repeat should keep the reel held")
	}
	if h.Held(ms(451)) {
		t.Error("hold should end one window after the last repeat")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(0)
	now := time.Unix(0, 0)
	h.Press(now)
	h.PressMouse()
	h.Reset()
	if h.Held(now) {
		t.Error("reset should clear key and mouse state")
	}
	h.Press(now)
	if !h.Held(now.Add(149 * time.Millisecond)) {
		t.Error("default window should be applied")
	}
}
