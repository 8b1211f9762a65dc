// Package config loads vatscope configuration.
//
// Configuration lives in ~/.config/vatscope/config.toml; every field is
// optional and a missing file simply yields defaults. A .env file in the
// working directory and VATSCOPE_* environment variables override file
// values, which keeps test setups and one-off mirror overrides out of the
// config file.
//
// Supported keys:
//
//	status_url            discovery endpoint (default status.vatsim.net)
//	data_url              direct datafeed URL, skips discovery
//	poll_interval_seconds refresh cadence (default 15, minimum 1)
//	log_file              rotating log destination
//	log_level             debug | info | warn | error
package config
