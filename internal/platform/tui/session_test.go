package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/pipeline"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "Future6.json")
	pipe, err := pipeline.New(cfg, nil, nil)
	if err != nil {
		t.Fatalf("pipeline.New() failed: %v", err)
	}
	return NewSessionModel(pipe, nil, pipeline.Request{Seed: 11, DryRun: true}, 100, 40, "tester")
}

func step(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return s, cmd
}

func TestSessionGenerateAndReturn(t *testing.T) {
	m := newTestSession(t)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateGenerating {
		t.Fatalf("Expected generating state, got %d", m.state)
	}
	if cmd == nil {
		t.Fatal("Expected a generation command")
	}

	m, _ = step(t, m, cmd())
	if m.state != stateSummary {
		t.Fatalf("Expected summary state, got %d", m.state)
	}
	if m.err != nil {
		t.Fatalf("Generation failed: %v", m.err)
	}
	if m.LastOutcome() == nil || m.LastOutcome().Seed != 11 {
		t.Fatalf("Expected outcome with seed 11, got %+v", m.LastOutcome())
	}
	if m.LastOutcome().Result.Difficulty != config.DifficultyMedium {
		t.Errorf("Expected Medium level, got %s", m.LastOutcome().Result.Difficulty)
	}
	if !strings.Contains(m.View(), "Medium level") {
		t.Error("Summary view does not name the tier")
	}

	m, _ = step(t, m, keyRunes("b"))
	if m.state != stateMenu {
		t.Errorf("Expected menu after back, got %d", m.state)
	}
}

func TestSessionRegenerateUsesFreshSeed(t *testing.T) {
	m := newTestSession(t)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, cmd())

	m, cmd = step(t, m, keyRunes("r"))
	if m.state != stateGenerating || cmd == nil {
		t.Fatal("Expected regeneration to start")
	}
	m, _ = step(t, m, cmd())
	if m.LastOutcome().Seed == 11 {
		t.Error("Regenerate should not reuse the session seed")
	}
}

func TestSessionHistoryWithoutStore(t *testing.T) {
	m := newTestSession(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateHistory {
		t.Fatalf("Expected history state, got %d", m.state)
	}
	if !strings.Contains(m.View(), "History is disabled.") {
		t.Error("Expected disabled-history message")
	}

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Errorf("Expected menu after leaving history, got %d", m.state)
	}
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Error("Leaving embedded history must not quit the session")
		}
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	m, cmd := step(t, m, keyRunes("q"))
	if !m.quitting {
		t.Error("Expected session to quit")
	}
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}
