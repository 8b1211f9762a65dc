package ui

import (
	"strings"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// matchesFilter reports whether a roster row passes the filter: a
// case-insensitive substring match over callsign and name. An empty filter
// matches everything.
func matchesFilter(filter, callsign, name string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(callsign), filter) ||
		strings.Contains(strings.ToLower(name), filter)
}

// filterPilots returns the pilots passing the filter, preserving order. The
// input slice is never mutated.
func filterPilots(pilots []vatsim.Pilot, filter string) []vatsim.Pilot {
	if strings.TrimSpace(filter) == "" {
		return pilots
	}
	out := make([]vatsim.Pilot, 0, len(pilots))
	for _, p := range pilots {
		if matchesFilter(filter, p.Callsign, p.Name) {
			out = append(out, p)
		}
	}
	return out
}

// filterControllers returns the controllers passing the filter, preserving
// order.
func filterControllers(controllers []vatsim.Controller, filter string) []vatsim.Controller {
	if strings.TrimSpace(filter) == "" {
		return controllers
	}
	out := make([]vatsim.Controller, 0, len(controllers))
	for _, c := range controllers {
		if matchesFilter(filter, c.Callsign, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) visiblePilots() []vatsim.Pilot {
	return filterPilots(m.snapshot.Pilots, m.activeFilter())
}

func (m Model) visibleControllers() []vatsim.Controller {
	return filterControllers(m.snapshot.Controllers, m.activeFilter())
}
