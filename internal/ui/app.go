package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vatscope/vatscope/internal/prefs"
	"github.com/vatscope/vatscope/internal/state"
)

// Tab identifies the active roster table.
type Tab int

const (
	TabPilots Tab = iota
	TabControllers
)

// pageJump is how many rows pgup/pgdn moves, matching up/down paging in the
// rest of the UI.
const pageJump = 10

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	prefsPath string
	uiTick    time.Duration

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot

	// Roster state
	tab      Tab
	selected [2]int // per-tab selection index into the filtered rows

	// Filter state
	filterInput textinput.Model
	filtering   bool   // filter entry active
	filter      string // committed filter text
	prevFilter  string // restored when filter entry is cancelled

	// Overlays
	showHelp   bool
	showDetail bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	// The UI redraws at least once per second so header ages stay live,
	// even when the poll cadence is slower.
	uiTick := opts.PollTick
	if uiTick <= 0 || uiTick > time.Second {
		uiTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "callsign or name"
	input.Prompt = "/"
	input.CharLimit = 64

	return Model{
		store:       opts.Store,
		prefsPath:   prefsPath,
		uiTick:      uiTick,
		theme:       GetTheme(themeName),
		keys:        defaultKeyMap(),
		filterInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.uiTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.uiTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.clampSelection()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDetail {
		return m.renderDetail()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit is reachable from every state.
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showDetail {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Detail), key.Matches(msg, m.keys.Quit):
			m.showDetail = false
		}
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		// Esc clears an active filter before it quits.
		if m.filter != "" {
			m.filter = ""
			m.filterInput.SetValue("")
			m.clampSelection()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.SwitchTab):
		m.switchTab()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.prevFilter = m.filter
		m.filtering = true
		m.filterInput.SetValue(m.filter)
		m.filterInput.CursorEnd()
		cmd := m.filterInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Detail):
		if m.rowCount() > 0 {
			m.showDetail = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1, true)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1, true)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(pageJump, false)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-pageJump, false)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected[m.tab] = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if count := m.rowCount(); count > 0 {
			m.selected[m.tab] = count - 1
		}
		return m, nil
	}

	return m, nil
}

// handleFilterKey processes keyboard input while the filter input is open.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filter = m.prevFilter
		m.filterInput.Blur()
		m.filterInput.SetValue(m.filter)
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.filter = m.filterInput.Value()
		m.filterInput.Blur()
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	// The displayed subset tracks every keystroke.
	m.clampSelection()
	return m, cmd
}

// switchTab flips between the pilots and controllers tables. Both selections
// reset to the top so the tables always come up in a known position.
func (m *Model) switchTab() {
	if m.tab == TabPilots {
		m.tab = TabControllers
	} else {
		m.tab = TabPilots
	}
	m.selected[TabPilots] = 0
	m.selected[TabControllers] = 0
}

// moveSelection moves the active tab's selection by delta. Single steps wrap
// around the table; page jumps clamp at the edges.
func (m *Model) moveSelection(delta int, wrap bool) {
	count := m.rowCount()
	if count == 0 {
		return
	}
	next := m.selected[m.tab] + delta
	if wrap {
		next = ((next % count) + count) % count
	} else {
		if next < 0 {
			next = 0
		}
		if next > count-1 {
			next = count - 1
		}
	}
	m.selected[m.tab] = next
}

// activeFilter returns the filter currently applied to the tables: the live
// input while typing, the committed text otherwise.
func (m Model) activeFilter() string {
	if m.filtering {
		return m.filterInput.Value()
	}
	return m.filter
}

// rowCount returns the number of displayed rows in the active tab.
func (m Model) rowCount() int {
	if m.tab == TabPilots {
		return len(m.visiblePilots())
	}
	return len(m.visibleControllers())
}

// clampSelection keeps both tab selections inside the displayed row counts.
func (m *Model) clampSelection() {
	counts := [2]int{
		len(filterPilots(m.snapshot.Pilots, m.activeFilter())),
		len(filterControllers(m.snapshot.Controllers, m.activeFilter())),
	}
	for tab, count := range counts {
		if count == 0 {
			m.selected[tab] = 0
			continue
		}
		if m.selected[tab] >= count {
			m.selected[tab] = count - 1
		}
		if m.selected[tab] < 0 {
			m.selected[tab] = 0
		}
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled. The alternate screen and terminal mode are restored
// on every exit path.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)) {
		// Interrupt signals cancel the context; that is a clean quit.
		return nil
	}
	return err
}
