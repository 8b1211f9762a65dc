// Package app provides the orchestration layer for vatscope.
//
// # Overview
//
// This package wires together configuration, logging, polling, state
// management, and the UI. It is the composition root where all dependencies
// are initialized and connected.
//
// # Startup Sequence
//
//  1. Load configuration from ~/.config/vatscope/config.toml
//  2. Set up the rotating file logger
//  3. Load user preferences (theme)
//  4. Build the datafeed client, discovering a mirror unless data_url is set
//  5. Create the shared state.Store
//  6. Launch the background poller goroutine
//  7. Perform one synchronous refresh so the first frame has data
//  8. Start the TUI and block until the user quits or the context cancels
//
// # Polling Behavior
//
// The poller fetches the datafeed on a fixed interval (default 15 seconds,
// matching the feed's own republish cadence). On each tick it replaces the
// shared snapshot atomically; on failure it records the error and keeps the
// previous roster. Consecutive failures double the poll delay up to a
// 60 second cap, and a success resets the cadence. The UI reads snapshots on
// its own tick, so a slow or hung fetch never blocks input handling.
//
// # Error Handling
//
// Fatal (returned from Run): unreadable or malformed config, log file setup
// failure, datafeed mirror discovery failure at startup. Recoverable
// (logged, polling continues): any periodic fetch failure.
package app
