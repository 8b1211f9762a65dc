// Package state provides thread-safe state management for vatscope.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the
// VATSIM roster between the background poller and the UI. It is the single
// coordination point where polling updates meet rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):            Consumer (UI):
//	┌────────────────┐           ┌─────────────────┐
//	│ FetchData()    │           │                 │
//	│      ↓         │           │                 │
//	│ store.Update() │──────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)  │      ↓          │
//	│  repeat...     │           │   render UI     │
//	└────────────────┘           └─────────────────┘
//
// A readers-writer lock mediates between the two goroutines: Update takes
// the write lock, Snapshot the read lock, and both copy the roster slices so
// neither side ever observes a partially updated roster.
//
// # Update Semantics
//
// The Update method keeps the last good roster when a poll fails:
//
//	// Success: replace the whole snapshot
//	store.Update(data, nil)
//	→ roster replaced, LastError cleared, ConsecutiveFailures reset
//
//	// Failure: keep old data, record the error
//	store.Update(nil, err)
//	→ roster unchanged, LastError set, ConsecutiveFailures incremented
//
// This ensures the UI always has the most recent successful data to display
// while still being informed that it may be stale. Snapshot.IsOffline
// reports true after two consecutive failures so the UI can escalate from a
// transient error note to an offline banner.
//
// # Design Rationale
//
// A mutex-guarded value is simpler than channels for a single writer with a
// polling reader, and whole-snapshot replacement is simpler than incremental
// updates. Copying a few thousand small structs per refresh is negligible
// for a desktop tool.
package state
