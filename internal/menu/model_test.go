package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m model, msg tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	out, cmd := m.Update(msg)
	return out.(model), cmd
}

func testModel(t *testing.T) model {
	t.Helper()
	g := mustLayout(t, []string{"a", "b", "c", "d", "e"}, Options{Columns: 2})
	return newModel(g, "Pick one", 0, -1)
}

func TestModelDirectionalKeys(t *testing.T) {
	m := testModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Errorf("down: expected 1, got %d", m.selected)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.selected != 4 {
		t.Errorf("right: expected 4, got %d", m.selected)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 3 {
		t.Errorf("up: expected 3, got %d", m.selected)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.selected != 0 {
		t.Errorf("left: expected 0, got %d", m.selected)
	}
	// vi keys are bound too
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.selected != 1 {
		t.Errorf("j: expected 1, got %d", m.selected)
	}
}

func TestModelConfirmReturnsSelectionUnchanged(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	before := m.selected
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.confirmed {
		t.Error("enter should confirm")
	}
	if m.selected != before {
		t.Errorf("confirm must not move the selection: had %d, got %d", before, m.selected)
	}
	if cmd == nil {
		t.Fatal("confirm should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("confirm should emit tea.Quit")
	}
}

func TestModelCancelKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m, cmd := press(t, testModel(t), k)
		if !m.cancelled {
			t.Errorf("%s should cancel", k.String())
		}
		if m.confirmed {
			t.Errorf("%s must not confirm", k.String())
		}
		if cmd == nil {
			t.Errorf("%s should quit the program", k.String())
		}
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := testModel(t)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.selected != 0 || m.confirmed || m.cancelled {
		t.Error("unbound key should leave the state untouched")
	}
	if cmd != nil {
		t.Error("unbound key should not emit a command")
	}
}

func TestModelViewLayout(t *testing.T) {
	m := testModel(t)
	view := m.View()

	if !strings.Contains(view, "Pick one") {
		t.Error("view should contain the title")
	}
	for _, label := range []string{"a", "b", "c", "d", "e"} {
		if !strings.Contains(view, label) {
			t.Errorf("view should contain label %q", label)
		}
	}
	// Row-major rendering: a and d share the first grid line.
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "a") && !strings.Contains(line, "d") {
			t.Errorf("expected a and d on the same line, got %q", line)
		}
		if strings.Contains(line, "a") {
			break
		}
	}
}

func TestModelViewEmptyAfterExit(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.View() != "" {
		t.Error("no rendering after confirm")
	}

	m = testModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.View() != "" {
		t.Error("no rendering after cancel")
	}
}
