// Package vatsim provides an HTTP client for the public VATSIM datafeed.
//
// # Overview
//
// VATSIM exposes the currently connected network members through a JSON
// datafeed served from several mirrors. Consumers are expected to first read
// https://status.vatsim.net/status.json, which lists the active v3 mirror
// URLs, and then poll one of those mirrors.
//
// This package implements both steps:
//
//	client, err := vatsim.NewClient(ctx, vatsim.DefaultStatusURL)
//	if err != nil {
//		// status endpoint unreachable or listed no mirrors
//	}
//
//	data, err := client.FetchData(ctx)
//	if err != nil {
//		// network, HTTP status, or JSON decode failure
//	}
//
// The mirror is picked at random at startup and kept for the lifetime of the
// client; the mirrors serve identical content and the random pick spreads
// load as the feed operators request.
//
// # Data Shape
//
// The types in types.go mirror the datafeed v3 schema: General (feed
// metadata and connection counts), Pilot with an optional FlightPlan,
// Controller, and the ReferenceItem lookup tables for facilities and
// ratings. FetchData returns pilots and controllers sorted by callsign so
// callers get a stable display order regardless of feed ordering.
//
// # Request Handling
//
// All requests honor the passed context, carry Accept and User-Agent
// headers, and use a 10 second client timeout. Errors are wrapped with
// enough context to distinguish network failures, HTTP error statuses, and
// malformed payloads. The client performs no retries; the poll loop in the
// app layer owns retry cadence.
//
// # Thread Safety
//
// Client is safe for concurrent use; the underlying http.Client handles
// connection pooling internally.
package vatsim
