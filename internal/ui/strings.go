package ui

import (
	"fmt"
	"strings"
	"time"

	runewidth "github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given display width, adding ellipsis if
// needed. Width is measured in terminal cells, not runes, so wide characters
// in pilot names count double.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 1 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "…")
}

// pad truncates or right-pads a string to exactly the given display width.
func pad(value string, width int) string {
	return runewidth.FillRight(truncate(value, width), width)
}

// padLeft truncates or left-pads a string to exactly the given display width.
func padLeft(value string, width int) string {
	return runewidth.FillLeft(truncate(value, width), width)
}

// humanizeAge renders a duration as a compact age like "now", "42s", "3m".
func humanizeAge(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}

// formatAltitude renders feet with FL notation above the transition level,
// the way pilots read it.
func formatAltitude(feet int) string {
	if feet >= 18000 {
		return fmt.Sprintf("FL%d", (feet+50)/100)
	}
	return fmt.Sprintf("%dft", feet)
}

// formatGroundspeed renders knots.
func formatGroundspeed(knots int) string {
	return fmt.Sprintf("%dkt", knots)
}

// formatPosition renders a lat/long pair with two decimals, enough to place
// an aircraft without flooding the row.
func formatPosition(lat, lon float64) string {
	return fmt.Sprintf("%.2f, %.2f", lat, lon)
}
