// Package ui implements the vatscope terminal interface with Bubble Tea.
//
// The Model holds all transient UI state: the active tab (pilots or
// controllers), per-tab selection, the filter text, and which overlay (help,
// detail) is open. Roster data arrives as immutable state.Snapshot values
// fetched from the shared store on a timer tick; key events never touch the
// roster, only the view of it.
//
// Layout, top to bottom: a status bar (connection counts, feed age,
// staleness indicator), the tab bar with the filter readout, the roster
// table, and a key hint footer. The filter is a case-insensitive substring
// match over callsign and name, recomputed on every keystroke while the
// input is open.
//
// Quit is reachable from every state: ctrl+c is handled before any overlay
// or input routing. Bubble Tea restores the alternate screen and terminal
// mode on all exit paths, including context cancellation from an interrupt
// signal.
package ui
