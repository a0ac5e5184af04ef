package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tilestack/internal/games/tilestack"
	"github.com/vovakirdan/tilestack/internal/storage"
)

type fakeHistory struct {
	results map[string][]storage.Result
	err     error
	asked   []string
}

func (f *fakeHistory) RecentResults(gameID string, limit int) ([]storage.Result, error) {
	f.asked = append(f.asked, gameID)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[gameID], nil
}

func (f *fakeHistory) Summary(gameID string) (*storage.Summary, error) {
	s := &storage.Summary{GameID: gameID}
	for _, r := range f.results[gameID] {
		s.Played++
		switch r.Outcome {
		case storage.OutcomeWon:
			s.Won++
		case storage.OutcomeTimedOut:
			s.TimedOut++
		}
	}
	return s, nil
}

func sampleHistory() *fakeHistory {
	at := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	return &fakeHistory{results: map[string][]storage.Result{
		"tilestack": {
			{GameID: "tilestack", Layers: 3, Outcome: storage.OutcomeWon, ElapsedSecs: 142, CreatedAt: at},
			{GameID: "tilestack", Layers: 4, Outcome: storage.OutcomeTimedOut, ElapsedSecs: 360, TilesLeft: 12, CreatedAt: at},
		},
	}}
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name     string
		summary  *storage.Summary
		expected string
	}{
		{"nil", nil, "No rounds played yet."},
		{"empty", &storage.Summary{}, "No rounds played yet."},
		{"no wins", &storage.Summary{Played: 2, TimedOut: 2}, "Played 2  Won 0  Timed out 2"},
		{"with wins", &storage.Summary{Played: 3, Won: 2, TimedOut: 1}, "Played 3  Won 2  Timed out 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryLine(tt.summary); got != tt.expected {
				t.Errorf("SummaryLine() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestResultRows(t *testing.T) {
	rows := resultRows(sampleHistory().results["tilestack"])
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, expected 2", len(rows))
	}

	expected := []string{"1", "Won", "3", "142s", "0", "Mar 14 09:26"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][1] != "Time's up" {
		t.Errorf("rows[1] outcome = %q, expected Time's up", rows[1][1])
	}
	if rows[1][4] != "12" {
		t.Errorf("rows[1] tiles left = %q, expected 12", rows[1][4])
	}
}

func TestHistoryModelView(t *testing.T) {
	src := sampleHistory()
	m := NewHistoryModel(src, "tilestack", 100, 30)

	view := m.View()
	for _, want := range []string{"RESULTS - Tile Stack", "Played 2  Won 1  Timed out 1", "142s"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(view, "Fastest") {
		t.Error("View() should only report pass/fail counts")
	}
}

func TestHistoryModelSwitchesVariant(t *testing.T) {
	src := sampleHistory()
	m := NewHistoryModel(src, "tilestack", 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)

	if last := src.asked[len(src.asked)-1]; last != "tilestack_classic" {
		t.Errorf("loaded %q after tab, expected tilestack_classic", last)
	}
	if !strings.Contains(m.View(), "Nothing here yet.") {
		t.Error("empty variant should show the placeholder")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if last := src.asked[len(src.asked)-1]; last != "tilestack" {
		t.Errorf("loaded %q after shift+tab, expected tilestack", last)
	}
}

func TestHistoryModelLoadError(t *testing.T) {
	src := &fakeHistory{err: errors.New("disk on fire")}
	m := NewHistoryModel(src, "tilestack", 100, 30)

	if !strings.Contains(m.View(), "Could not read history: disk on fire") {
		t.Error("View() should report the load error")
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(sampleHistory(), "tilestack", 100, 30)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, expected tea.QuitMsg", cmd())
	}
	if next.(HistoryModel).View() != "" {
		t.Error("View() should be empty once quitting")
	}
}
