package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/go-fish/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []core.Action{core.ActionReel, core.ActionConfirm}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionReel}},
		{"w", runeKey("w"), []core.Action{core.ActionReel}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, []core.Action{core.ActionBack}},
		{"b", runeKey("b"), []core.Action{core.ActionBack}},
		{"r", runeKey("r"), []core.Action{core.ActionRestart}},
		{"c", runeKey("c"), []core.Action{core.ActionToggleCheat}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []core.Action{core.ActionJournal}},
		{"x", runeKey("x"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var frame core.InputFrame
			if km.MapKeyToFrame(tt.msg, &frame) {
				t.Fatalf("%q reported as quit", tt.msg.String())
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("%q: missing %v", tt.msg.String(), a)
				}
			}
			if !frame.Has(core.ActionAnyKey) {
				t.Errorf("%q: missing AnyKey", tt.msg.String())
			}
			if got := len(frame.Actions); got != len(tt.want)+1 {
				t.Errorf("%q: %d actions, want %d", tt.msg.String(), got, len(tt.want)+1)
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		var frame core.InputFrame
		if !km.MapKeyToFrame(msg, &frame) {
			t.Errorf("%q should quit", msg.String())
		}
		if frame.Has(core.ActionAnyKey) {
			t.Errorf("%q: quit must not count as AnyKey", msg.String())
		}
	}
}

func TestIsReelKey(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsReelKey(tea.KeyMsg{Type: tea.KeySpace}) || !km.IsReelKey(runeKey("w")) {
		t.Error("space and w should reel")
	}
	if km.IsReelKey(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Error("enter should not reel")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	hold := NewHoldTracker(100 * time.Millisecond)
	now := time.Unix(0, 0)

	var frame core.InputFrame
	km.MapMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, &frame, hold)
	if !frame.Has(core.ActionConfirm) {
		t.Error("left press should confirm")
	}
	if !hold.Held(now.Add(time.Hour)) {
		t.Error("mouse hold should last until release")
	}

	km.MapMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, &frame, hold)
	if hold.Held(now) {
		t.Error("release should end the hold")
	}

	var right core.InputFrame
	km.MapMouse(tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, &right, hold)
	if len(right.Actions) != 0 || hold.Held(now) {
		t.Error("right button should be ignored")
	}
}
