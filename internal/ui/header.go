package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the one-line status bar at the top of the screen.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var parts []string
	parts = append(parts, styles.Logo.Render("vatscope"))

	if !m.snapshot.HasData {
		if m.snapshot.LastError != nil {
			parts = append(parts, styles.DangerText.Render("VATSIM unreachable"))
			parts = append(parts, styles.WarningText.Render("retrying..."))
			if !m.snapshot.LastUpdated.IsZero() {
				parts = append(parts, styles.MutedText.Render(m.snapshot.LastUpdated.Format("15:04:05")))
			}
		} else {
			parts = append(parts, styles.WarningText.Render("Connecting to VATSIM..."))
		}
		return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
	}

	general := m.snapshot.General
	parts = append(parts, styles.MutedText.Render("online:")+" "+
		styles.Text.Render(fmt.Sprintf("%d", general.ConnectedClients)))
	parts = append(parts, styles.MutedText.Render("pilots:")+" "+
		styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Pilots))))
	parts = append(parts, styles.MutedText.Render("atc:")+" "+
		styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Controllers))))

	if !general.UpdateTimestamp.IsZero() {
		age := humanizeAge(time.Since(general.UpdateTimestamp))
		parts = append(parts, styles.MutedText.Render("feed:")+" "+
			styles.FaintText.Render(age+" ago"))
	}

	// Staleness indicator: a failed poll never hides silently behind the
	// last good roster.
	switch {
	case m.snapshot.IsOffline():
		parts = append(parts, styles.DangerText.Render("OFFLINE — showing stale data"))
	case m.snapshot.LastError != nil:
		errText := truncate(m.snapshot.LastError.Error(), maxHeaderError(m.width))
		parts = append(parts, styles.DangerText.Render("STALE")+" "+styles.WarningText.Render(errText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func maxHeaderError(width int) int {
	if width < 100 {
		return 30
	}
	return 60
}

// renderTabBar renders the Pilots/Controllers selector plus the filter state.
func (m Model) renderTabBar() string {
	styles := m.theme.Styles()

	pilots := styles.InactiveTab.Render("Pilots")
	controllers := styles.InactiveTab.Render("Controllers")
	if m.tab == TabPilots {
		pilots = styles.ActiveTab.Render("Pilots")
	} else {
		controllers = styles.ActiveTab.Render("Controllers")
	}

	bar := pilots + styles.FaintText.Render(" · ") + controllers

	visible := m.rowCount()
	total := len(m.snapshot.Pilots)
	if m.tab == TabControllers {
		total = len(m.snapshot.Controllers)
	}
	count := fmt.Sprintf("(%d)", visible)
	if visible != total {
		count = fmt.Sprintf("(%d/%d)", visible, total)
	}
	bar += " " + styles.MutedText.Render(count)

	if m.filtering {
		bar += "  " + m.filterInput.View()
	} else if m.filter != "" {
		bar += "  " + styles.AccentText.Render("/"+truncate(m.filter, 24))
	}

	return lipgloss.NewStyle().Width(m.width).Render(bar)
}

// renderFooter renders the key hint line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.filtering {
		return styles.Header.Width(m.width).Render(
			styles.MutedText.Render("enter") + styles.FaintText.Render(" apply  ") +
				styles.MutedText.Render("esc") + styles.FaintText.Render(" cancel"))
	}

	var hints []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		hints = append(hints, styles.MutedText.Render(help.Key)+styles.FaintText.Render(" "+help.Desc))
	}
	return styles.Header.Width(m.width).Render(strings.Join(hints, "  "))
}

// renderMain renders the regular (non-overlay) frame.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}
