package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/go-fish/internal/storage"
)

func openJournal(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	catches := []storage.Catch{
		{Species: "Carp", Difficulty: 1, Weight: 2.5, Size: 6.1, Caught: true, Score: 74},
		{Species: "Tuna", Difficulty: 4, Weight: 10.2, Size: 24.4, Caught: false},
		{Species: "Carp", Difficulty: 1, Weight: 2.9, Size: 7.9, Caught: true, Score: 80},
	}
	for _, c := range catches {
		if _, err := store.Record(c); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}
	return store
}

func journalUpdate(t *testing.T, m JournalModel, msg tea.Msg) JournalModel {
	t.Helper()
	next, _ := m.Update(msg)
	jm, ok := next.(JournalModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return jm
}

func TestJournalViews(t *testing.T) {
	m := NewJournalModel(openJournal(t), 100, 30)

	if m.view != JournalRecent || len(m.rows) != 3 {
		t.Fatalf("recent view: view=%v rows=%d", m.view, len(m.rows))
	}
	if m.rows[0][1] != "Carp" || m.rows[0][3] != "80" {
		t.Errorf("newest row = %v", m.rows[0])
	}

	m = journalUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != JournalTop || len(m.rows) != 2 {
		t.Fatalf("top view: view=%v rows=%d", m.view, len(m.rows))
	}
	if m.rows[0][3] != "80" {
		t.Errorf("best catch row = %v", m.rows[0])
	}

	m = journalUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != JournalSpecies || len(m.rows) != 1 {
		t.Fatalf("species view: view=%v rows=%d", m.view, len(m.rows))
	}

	m = journalUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.view != JournalTop {
		t.Errorf("shift+tab should go back, view = %v", m.view)
	}

	view := m.View()
	for _, want := range []string{"CATCH JOURNAL", "3 attempts, 2 caught", "best 80"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestJournalEmpty(t *testing.T) {
	m := NewJournalModel(nil, 80, 24)
	view := m.View()
	if !strings.Contains(view, "Nothing in the journal yet") {
		t.Error("empty journal should say so")
	}
	if !strings.Contains(view, "No attempts this session") {
		t.Error("empty summary should say so")
	}
}

func TestJournalExit(t *testing.T) {
	m := journalUpdate(t, NewJournalModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEscape})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}

	m = journalUpdate(t, NewJournalModel(nil, 80, 24), runeKey("q"))
	if !m.IsQuitting() || m.IsGoingBack() {
		t.Error("q should quit")
	}
}
