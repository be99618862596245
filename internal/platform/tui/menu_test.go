package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/levelgen/internal/config"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pressMenu(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	menu, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return menu
}

func TestMenuPreselectsMedium(t *testing.T) {
	m := NewMenuModel(80, 24)

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil {
		t.Fatal("Expected a selection after Enter")
	}
	if m.Selected().Difficulty != config.DifficultyMedium {
		t.Errorf("Expected Medium preselected, got %s", m.Selected().Difficulty)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(80, 24)

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyUp}) // clamps at the top
	m = pressMenu(t, m, keyRunes(" "))
	if got := m.Selected().Difficulty; got != config.DifficultyEasy {
		t.Errorf("Expected Easy, got %s", got)
	}

	m = NewMenuModel(80, 24)
	m = pressMenu(t, m, keyRunes("j"))
	m = pressMenu(t, m, keyRunes("j"))
	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Selected().Difficulty; got != config.DifficultyHard {
		t.Errorf("Expected Hard, got %s", got)
	}
}

func TestMenuQuitAndHistory(t *testing.T) {
	m := pressMenu(t, NewMenuModel(80, 24), keyRunes("q"))
	if !m.IsQuitting() {
		t.Error("Expected q to quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}

	m = pressMenu(t, NewMenuModel(80, 24), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsHistory() {
		t.Error("Expected Tab to request history")
	}
}

func TestMenuListsLayouts(t *testing.T) {
	m := NewMenuModel(100, 24)
	if len(m.items) != 3 {
		t.Fatalf("Expected 3 tiers, got %d", len(m.items))
	}
	if m.items[0].Detail != "10w/1f 10w/2f 12w/2f" {
		t.Errorf("Unexpected Easy layouts %q", m.items[0].Detail)
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	cases := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{keyRunes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{keyRunes("r"), MenuActionRegenerate},
		{keyRunes("x"), MenuActionNone},
	}
	for _, tc := range cases {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("%q: got %d, want %d", tc.msg.String(), got, tc.want)
		}
	}
}
