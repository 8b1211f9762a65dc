package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// renderDetail renders the inspection popup for the selected roster row.
func (m Model) renderDetail() string {
	var title, content string
	if m.tab == TabPilots {
		pilot := m.selectedPilot()
		if pilot == nil {
			return m.renderMain()
		}
		title = pilot.Callsign
		content = m.pilotDetail(*pilot)
	} else {
		controller := m.selectedController()
		if controller == nil {
			return m.renderMain()
		}
		title = controller.Callsign
		content = m.controllerDetail(*controller)
	}

	return m.renderModal(title, content, 56)
}

func (m Model) pilotDetail(p vatsim.Pilot) string {
	var b strings.Builder

	m.detailRow(&b, "Name", p.Name)
	m.detailRow(&b, "CID", fmt.Sprintf("%d", p.CID))
	m.detailRow(&b, "Server", p.Server)
	m.detailRow(&b, "Position", formatPosition(p.Latitude, p.Longitude))
	m.detailRow(&b, "Altitude", formatAltitude(p.Altitude))
	m.detailRow(&b, "Groundspeed", formatGroundspeed(p.Groundspeed))
	m.detailRow(&b, "Heading", fmt.Sprintf("%03d", p.Heading))
	m.detailRow(&b, "Squawk", p.Transponder)
	if !p.LogonTime.IsZero() {
		m.detailRow(&b, "Online since", p.LogonTime.Format("15:04z"))
	}

	styles := m.theme.Styles()
	if fp := p.FlightPlan; fp != nil {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Flight plan"))
		b.WriteString("\n")
		m.detailRow(&b, "Rules", fp.FlightRules)
		m.detailRow(&b, "Aircraft", p.AircraftType())
		m.detailRow(&b, "Routing", fp.Departure+" → "+fp.Arrival)
		if fp.Alternate != "" {
			m.detailRow(&b, "Alternate", fp.Alternate)
		}
		m.detailRow(&b, "Cruise", fp.Altitude)
		if route := strings.TrimSpace(fp.Route); route != "" {
			m.detailRow(&b, "Route", truncate(route, 120))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("No flight plan filed"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) controllerDetail(c vatsim.Controller) string {
	var b strings.Builder

	m.detailRow(&b, "Name", c.Name)
	m.detailRow(&b, "CID", fmt.Sprintf("%d", c.CID))
	m.detailRow(&b, "Server", c.Server)
	m.detailRow(&b, "Frequency", c.Frequency)
	m.detailRow(&b, "Facility", m.snapshot.FacilityShort(c.Facility))
	m.detailRow(&b, "Rating", m.snapshot.RatingShort(c.Rating))
	m.detailRow(&b, "Visual range", fmt.Sprintf("%dnm", c.VisualRange))
	if !c.LogonTime.IsZero() {
		m.detailRow(&b, "Online since", c.LogonTime.Format("15:04z"))
	}

	if len(c.TextAtis) > 0 {
		styles := m.theme.Styles()
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("ATIS"))
		b.WriteString("\n")
		for _, line := range c.TextAtis {
			b.WriteString(styles.MutedText.Render(truncate(line, 50)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) detailRow(b *strings.Builder, label, value string) {
	styles := m.theme.Styles()
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Width(14)
	b.WriteString(labelStyle.Render(label))
	b.WriteString(styles.Text.Render(value))
	b.WriteString("\n")
}

// renderModal centers a bordered box over a blanked screen.
func (m Model) renderModal(title, content string, width int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", width-6)))
	b.WriteString("\n")
	b.WriteString(content)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
