package ui

import (
	"testing"
	"time"

	runewidth "github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"short stays", "UAL123", 10, "UAL123"},
		{"exact stays", "UAL123", 6, "UAL123"},
		{"long gets ellipsis", "A very long pilot name", 10, "A very lo…"},
		{"zero limit passthrough", "abc", 0, "abc"},
		{"trims whitespace", "  abc  ", 10, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.value, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
		})
	}
}

func TestPad_ExactDisplayWidth(t *testing.T) {
	for _, value := range []string{"ab", "abcdefghijk", "名前テスト"} {
		if got := runewidth.StringWidth(pad(value, 8)); got != 8 {
			t.Errorf("pad(%q, 8) width = %d, want 8", value, got)
		}
		if got := runewidth.StringWidth(padLeft(value, 8)); got != 8 {
			t.Errorf("padLeft(%q, 8) width = %d, want 8", value, got)
		}
	}
}

func TestHumanizeAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "now"},
		{42 * time.Second, "42s"},
		{3 * time.Minute, "3m"},
		{2 * time.Hour, "2h"},
	}
	for _, tt := range tests {
		if got := humanizeAge(tt.d); got != tt.want {
			t.Errorf("humanizeAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatAltitude(t *testing.T) {
	if got := formatAltitude(2500); got != "2500ft" {
		t.Errorf("formatAltitude(2500) = %q, want 2500ft", got)
	}
	if got := formatAltitude(35012); got != "FL350" {
		t.Errorf("formatAltitude(35012) = %q, want FL350", got)
	}
	if got := formatAltitude(17999); got != "17999ft" {
		t.Errorf("formatAltitude(17999) = %q, want feet below transition", got)
	}
}

func TestFormatPosition(t *testing.T) {
	if got := formatPosition(47.4502, -122.3088); got != "47.45, -122.31" {
		t.Errorf("formatPosition = %q", got)
	}
}
