package ui

import (
	"strings"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// Fixed column widths; the name column absorbs whatever is left.
const (
	colCallsign  = 10
	colAircraft  = 9
	colAltitude  = 7
	colSpeed     = 6
	colFrequency = 8
	colRating    = 6
	colFacility  = 8
	colGap       = 2
)

// renderTable renders the active roster table, column header included,
// padded to fill the space between the tab bar and the footer.
func (m Model) renderTable() string {
	tableHeight := m.height - 3 // status bar, tab bar, footer
	if tableHeight < 2 {
		tableHeight = 2
	}
	bodyRows := tableHeight - 1 // column header

	var lines []string
	if m.tab == TabPilots {
		lines = m.pilotLines(bodyRows)
	} else {
		lines = m.controllerLines(bodyRows)
	}

	for len(lines) < tableHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// visibleWindow returns the first row shown so that the selection stays on
// screen: scrolling follows the selection instead of paging.
func visibleWindow(selected, count, rows int) int {
	if rows <= 0 || count <= rows {
		return 0
	}
	start := 0
	if selected >= rows {
		start = selected - rows + 1
	}
	if start > count-rows {
		start = count - rows
	}
	return start
}

func (m Model) pilotLines(bodyRows int) []string {
	styles := m.theme.Styles()
	pilots := m.visiblePilots()

	nameWidth := m.nameWidth(colCallsign + colAircraft + colAltitude + colSpeed + 4*colGap)
	gap := strings.Repeat(" ", colGap)

	header := pad("Callsign", colCallsign) + gap +
		pad("Name", nameWidth) + gap +
		pad("Aircraft", colAircraft) + gap +
		padLeft("Alt", colAltitude) + gap +
		padLeft("GS", colSpeed)
	lines := []string{styles.TableHeader.Render(header)}

	if len(pilots) == 0 {
		lines = append(lines, m.emptyRosterLine("No pilots match", "No pilots online"))
		return lines
	}

	selected := m.selected[TabPilots]
	start := visibleWindow(selected, len(pilots), bodyRows)
	end := start + bodyRows
	if end > len(pilots) {
		end = len(pilots)
	}

	for i := start; i < end; i++ {
		p := pilots[i]
		row := pad(p.Callsign, colCallsign) + gap +
			pad(p.Name, nameWidth) + gap +
			pad(p.AircraftType(), colAircraft) + gap +
			padLeft(formatAltitude(p.Altitude), colAltitude) + gap +
			padLeft(formatGroundspeed(p.Groundspeed), colSpeed)
		lines = append(lines, m.styleRow(row, i == selected))
	}
	return lines
}

func (m Model) controllerLines(bodyRows int) []string {
	styles := m.theme.Styles()
	controllers := m.visibleControllers()

	nameWidth := m.nameWidth(colCallsign + colFrequency + colRating + colFacility + 4*colGap)
	gap := strings.Repeat(" ", colGap)

	header := pad("Callsign", colCallsign) + gap +
		pad("Name", nameWidth) + gap +
		padLeft("Freq", colFrequency) + gap +
		pad("Rating", colRating) + gap +
		pad("Facility", colFacility)
	lines := []string{styles.TableHeader.Render(header)}

	if len(controllers) == 0 {
		lines = append(lines, m.emptyRosterLine("No controllers match", "No controllers online"))
		return lines
	}

	selected := m.selected[TabControllers]
	start := visibleWindow(selected, len(controllers), bodyRows)
	end := start + bodyRows
	if end > len(controllers) {
		end = len(controllers)
	}

	for i := start; i < end; i++ {
		c := controllers[i]
		row := pad(c.Callsign, colCallsign) + gap +
			pad(c.Name, nameWidth) + gap +
			padLeft(c.Frequency, colFrequency) + gap +
			pad(m.snapshot.RatingShort(c.Rating), colRating) + gap +
			pad(m.snapshot.FacilityShort(c.Facility), colFacility)
		lines = append(lines, m.styleRow(row, i == selected))
	}
	return lines
}

func (m Model) styleRow(row string, selected bool) string {
	styles := m.theme.Styles()
	if selected {
		return styles.Selected.Width(m.width).Render(row)
	}
	return styles.Text.Render(row)
}

func (m Model) emptyRosterLine(filtered, empty string) string {
	styles := m.theme.Styles()
	msg := empty
	if strings.TrimSpace(m.activeFilter()) != "" {
		msg = filtered + " /" + truncate(m.activeFilter(), 24)
	}
	return styles.MutedText.Render(msg)
}

// nameWidth computes the expanding name column width for a given fixed
// budget, never shrinking below a readable floor.
func (m Model) nameWidth(fixed int) int {
	width := m.width - fixed
	if width < 12 {
		width = 12
	}
	return width
}

// selectedPilot returns the pilot under the cursor, or nil.
func (m Model) selectedPilot() *vatsim.Pilot {
	pilots := m.visiblePilots()
	idx := m.selected[TabPilots]
	if idx < 0 || idx >= len(pilots) {
		return nil
	}
	return &pilots[idx]
}

// selectedController returns the controller under the cursor, or nil.
func (m Model) selectedController() *vatsim.Controller {
	controllers := m.visibleControllers()
	idx := m.selected[TabControllers]
	if idx < 0 || idx >= len(controllers) {
		return nil
	}
	return &controllers[idx]
}
