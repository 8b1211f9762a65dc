package vatsim

import (
	"strings"
	"time"
)

// StatusIndex mirrors https://status.vatsim.net/status.json, the discovery
// document that lists the active datafeed mirrors.
type StatusIndex struct {
	Data  StatusEndpoints `json:"data"`
	User  []string        `json:"user"`
	Metar []string        `json:"metar"`
}

// StatusEndpoints groups the endpoint lists inside the status document.
type StatusEndpoints struct {
	V3           []string `json:"v3"`
	Transceivers []string `json:"transceivers"`
	Servers      []string `json:"servers"`
	ServersSweat []string `json:"servers_sweatbox"`
	ServersAll   []string `json:"servers_all"`
}

// Data mirrors the VATSIM datafeed v3 payload.
type Data struct {
	General     General         `json:"general"`
	Pilots      []Pilot         `json:"pilots"`
	Controllers []Controller    `json:"controllers"`
	Facilities  []ReferenceItem `json:"facilities"`
	Ratings     []ReferenceItem `json:"ratings"`
}

// General carries feed-level metadata.
type General struct {
	Version          int       `json:"version"`
	Reload           int       `json:"reload"`
	Update           string    `json:"update"`
	UpdateTimestamp  time.Time `json:"update_timestamp"`
	ConnectedClients int       `json:"connected_clients"`
	UniqueUsers      int       `json:"unique_users"`
}

// Pilot is one connected pilot session.
type Pilot struct {
	CID         int         `json:"cid"`
	Name        string      `json:"name"`
	Callsign    string      `json:"callsign"`
	Server      string      `json:"server"`
	PilotRating int         `json:"pilot_rating"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Altitude    int         `json:"altitude"`
	Groundspeed int         `json:"groundspeed"`
	Transponder string      `json:"transponder"`
	Heading     int         `json:"heading"`
	QNHiHg      float64     `json:"qnh_i_hg"`
	QNHMb       int         `json:"qnh_mb"`
	FlightPlan  *FlightPlan `json:"flight_plan"`
	LogonTime   time.Time   `json:"logon_time"`
	LastUpdated time.Time   `json:"last_updated"`
}

// FlightPlan is the filed plan attached to a pilot, when one exists.
type FlightPlan struct {
	FlightRules         string `json:"flight_rules"`
	Aircraft            string `json:"aircraft"`
	AircraftFAA         string `json:"aircraft_faa"`
	AircraftShort       string `json:"aircraft_short"`
	Departure           string `json:"departure"`
	Arrival             string `json:"arrival"`
	Alternate           string `json:"alternate"`
	CruiseTAS           string `json:"cruise_tas"`
	Altitude            string `json:"altitude"`
	DepTime             string `json:"deptime"`
	EnrouteTime         string `json:"enroute_time"`
	FuelTime            string `json:"fuel_time"`
	Remarks             string `json:"remarks"`
	Route               string `json:"route"`
	RevisionID          int    `json:"revision_id"`
	AssignedTransponder string `json:"assigned_transponder"`
}

// Controller is one connected ATC session.
type Controller struct {
	CID         int       `json:"cid"`
	Name        string    `json:"name"`
	Callsign    string    `json:"callsign"`
	Frequency   string    `json:"frequency"`
	Facility    int       `json:"facility"`
	Rating      int       `json:"rating"`
	Server      string    `json:"server"`
	VisualRange int       `json:"visual_range"`
	TextAtis    []string  `json:"text_atis"`
	LastUpdated time.Time `json:"last_updated"`
	LogonTime   time.Time `json:"logon_time"`
}

// ReferenceItem is an entry in the feed's lookup tables (facilities, ratings).
type ReferenceItem struct {
	ID    int    `json:"id"`
	Short string `json:"short"`
	Long  string `json:"long"`
}

// AircraftType returns the most specific filed aircraft type, or "???" when
// no plan is filed or the plan carries no type.
func (p Pilot) AircraftType() string {
	if p.FlightPlan == nil {
		return "???"
	}
	if t := strings.TrimSpace(p.FlightPlan.AircraftFAA); t != "" {
		return t
	}
	if t := strings.TrimSpace(p.FlightPlan.AircraftShort); t != "" {
		return t
	}
	return "???"
}

// RatingShort maps a controller rating id to its short name ("S1", "C3", ...)
// using the feed's own ratings table. Unknown ids return "?".
func (d *Data) RatingShort(id int) string {
	return lookupShort(d.Ratings, id)
}

// FacilityShort maps a facility id to its short name ("TWR", "CTR", ...).
func (d *Data) FacilityShort(id int) string {
	return lookupShort(d.Facilities, id)
}

func lookupShort(items []ReferenceItem, id int) string {
	for _, item := range items {
		if item.ID == id {
			return item.Short
		}
	}
	return "?"
}
