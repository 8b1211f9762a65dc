package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vatscope/vatscope/internal/state"
	"github.com/vatscope/vatscope/internal/vatsim"
)

func testModel(pilots []vatsim.Pilot, controllers []vatsim.Controller) Model {
	m := New(Options{})
	m.width = 120
	m.height = 40
	m.ready = true
	m.snapshot = state.Snapshot{
		Pilots:      pilots,
		Controllers: controllers,
		HasData:     true,
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pilotsN(n int) []vatsim.Pilot {
	out := make([]vatsim.Pilot, n)
	for i := range out {
		out[i] = vatsim.Pilot{Callsign: string(rune('A' + i))}
	}
	return out
}

func TestMoveSelection_WrapAround(t *testing.T) {
	m := testModel(pilotsN(3), nil)

	m.moveSelection(-1, true)
	if m.selected[TabPilots] != 2 {
		t.Fatalf("up from top = %d, want wrap to 2", m.selected[TabPilots])
	}
	m.moveSelection(1, true)
	if m.selected[TabPilots] != 0 {
		t.Fatalf("down from bottom = %d, want wrap to 0", m.selected[TabPilots])
	}
}

func TestMoveSelection_PageClamps(t *testing.T) {
	m := testModel(pilotsN(5), nil)

	m.moveSelection(pageJump, false)
	if m.selected[TabPilots] != 4 {
		t.Fatalf("page down = %d, want clamp to 4", m.selected[TabPilots])
	}
	m.moveSelection(-pageJump, false)
	if m.selected[TabPilots] != 0 {
		t.Fatalf("page up = %d, want clamp to 0", m.selected[TabPilots])
	}
}

func TestSwitchTab_ResetsSelections(t *testing.T) {
	m := testModel(pilotsN(5), []vatsim.Controller{{Callsign: "SEA_TWR"}})
	m.selected[TabPilots] = 3

	m.switchTab()
	if m.tab != TabControllers {
		t.Fatalf("tab = %v, want controllers", m.tab)
	}
	if m.selected[TabPilots] != 0 || m.selected[TabControllers] != 0 {
		t.Fatalf("selections = %v, want reset to top", m.selected)
	}
}

func TestClampSelection_AfterRosterShrinks(t *testing.T) {
	m := testModel(pilotsN(5), nil)
	m.selected[TabPilots] = 4

	m.snapshot.Pilots = pilotsN(2)
	m.clampSelection()
	if m.selected[TabPilots] != 1 {
		t.Fatalf("selection = %d, want clamp to 1", m.selected[TabPilots])
	}

	m.snapshot.Pilots = nil
	m.clampSelection()
	if m.selected[TabPilots] != 0 {
		t.Fatalf("selection = %d, want 0 for empty roster", m.selected[TabPilots])
	}
}

func TestHandleKey_QuitFromAnyState(t *testing.T) {
	states := []func(m *Model){
		func(m *Model) {},
		func(m *Model) { m.showHelp = true },
		func(m *Model) { m.showDetail = true },
		func(m *Model) { m.filtering = true },
	}

	for i, mutate := range states {
		m := testModel(pilotsN(1), nil)
		mutate(&m)
		_, cmd := m.handleKey(keyMsg("ctrl+c"))
		if cmd == nil {
			t.Fatalf("state %d: ctrl+c produced no command, want quit", i)
		}
		if msg := cmd(); msg != tea.Quit() {
			t.Fatalf("state %d: ctrl+c = %v, want tea.Quit", i, msg)
		}
	}
}

func TestHandleKey_FilterLifecycle(t *testing.T) {
	m := testModel([]vatsim.Pilot{
		{Callsign: "UAL123", Name: "A"},
		{Callsign: "DAL456", Name: "B"},
	}, nil)

	// Open the filter and type.
	next, _ := m.handleKey(keyMsg("/"))
	m = next.(Model)
	if !m.filtering {
		t.Fatalf("/ should open the filter input")
	}
	next, _ = m.handleKey(keyMsg("d"))
	m = next.(Model)
	next, _ = m.handleKey(keyMsg("a"))
	m = next.(Model)
	next, _ = m.handleKey(keyMsg("l"))
	m = next.(Model)

	if got := m.visiblePilots(); len(got) != 1 || got[0].Callsign != "DAL456" {
		t.Fatalf("live filter = %#v, want only DAL456", got)
	}

	// Commit and verify the subset sticks.
	next, _ = m.handleKey(keyMsg("enter"))
	m = next.(Model)
	if m.filtering || m.filter != "dal" {
		t.Fatalf("filtering=%v filter=%q, want committed dal", m.filtering, m.filter)
	}
	if got := m.visiblePilots(); len(got) != 1 {
		t.Fatalf("committed filter = %#v, want one row", got)
	}

	// Esc clears the committed filter.
	next, _ = m.handleKey(keyMsg("esc"))
	m = next.(Model)
	if m.filter != "" || len(m.visiblePilots()) != 2 {
		t.Fatalf("esc should clear the filter, got %q", m.filter)
	}
}

func TestHandleKey_FilterCancelRestoresPrevious(t *testing.T) {
	m := testModel(pilotsN(3), nil)
	m.filter = "a"

	next, _ := m.handleKey(keyMsg("/"))
	m = next.(Model)
	next, _ = m.handleKey(keyMsg("z"))
	m = next.(Model)
	next, _ = m.handleKey(keyMsg("esc"))
	m = next.(Model)

	if m.filtering || m.filter != "a" {
		t.Fatalf("cancel should restore previous filter, got %q", m.filter)
	}
}

func TestHandleKey_DetailToggle(t *testing.T) {
	m := testModel(pilotsN(2), nil)

	next, _ := m.handleKey(keyMsg("enter"))
	m = next.(Model)
	if !m.showDetail {
		t.Fatalf("enter should open the detail popup")
	}
	next, _ = m.handleKey(keyMsg("esc"))
	m = next.(Model)
	if m.showDetail {
		t.Fatalf("esc should close the detail popup")
	}

	// No popup for an empty roster.
	m.snapshot.Pilots = nil
	m.clampSelection()
	next, _ = m.handleKey(keyMsg("enter"))
	m = next.(Model)
	if m.showDetail {
		t.Fatalf("enter on empty roster should not open the popup")
	}
}

func TestHandleKey_HelpClosesOnAnyKey(t *testing.T) {
	m := testModel(pilotsN(1), nil)

	next, _ := m.handleKey(keyMsg("?"))
	m = next.(Model)
	if !m.showHelp {
		t.Fatalf("? should open help")
	}
	next, _ = m.handleKey(keyMsg("x"))
	m = next.(Model)
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		count    int
		rows     int
		want     int
	}{
		{"fits on screen", 3, 5, 10, 0},
		{"selection at top", 0, 100, 20, 0},
		{"selection inside first page", 19, 100, 20, 0},
		{"selection past first page", 20, 100, 20, 1},
		{"selection at bottom", 99, 100, 20, 80},
		{"zero rows", 5, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleWindow(tt.selected, tt.count, tt.rows); got != tt.want {
				t.Errorf("visibleWindow(%d, %d, %d) = %d, want %d", tt.selected, tt.count, tt.rows, got, tt.want)
			}
		})
	}
}

func TestThemeCycle(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("want at least two themes, got %v", names)
	}
	next := NextTheme(names[0])
	if next == names[0] {
		t.Fatalf("NextTheme should advance, got %q", next)
	}
	if NextTheme("unknown") != names[0] {
		t.Fatalf("NextTheme(unknown) should restart the cycle")
	}
	if GetTheme("unknown").Name != "Dracula" {
		t.Fatalf("GetTheme(unknown) should fall back to Dracula")
	}
}
