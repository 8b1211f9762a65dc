package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vatscope/vatscope/internal/vatsim"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	data := &vatsim.Data{
		General: vatsim.General{ConnectedClients: 2},
		Pilots: []vatsim.Pilot{
			{Callsign: "DAL456", Name: "B"},
			{Callsign: "UAL123", Name: "A"},
		},
		Controllers: []vatsim.Controller{{Callsign: "SEA_TWR"}},
		Ratings:     []vatsim.ReferenceItem{{ID: 5, Short: "C1"}},
	}

	before := time.Now()
	s.Update(data, nil)

	snap := s.Snapshot()
	if !snap.HasData || snap.General.ConnectedClients != 2 {
		t.Fatalf("snapshot general = %#v, want ConnectedClients=2 HasData=true", snap.General)
	}
	if len(snap.Pilots) != 2 || len(snap.Controllers) != 1 {
		t.Fatalf("snapshot roster = %d pilots %d controllers, want 2/1", len(snap.Pilots), len(snap.Controllers))
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if snap.RatingShort(5) != "C1" {
		t.Fatalf("RatingShort(5) = %q, want C1", snap.RatingShort(5))
	}

	// Returned snapshot should be independent of the stored one.
	snap.Pilots[0].Callsign = "XXX"
	snap2 := s.Snapshot()
	if snap2.Pilots[0].Callsign != "DAL456" {
		t.Fatalf("Snapshot should clone pilots; got %q want DAL456", snap2.Pilots[0].Callsign)
	}
}

func TestStore_UpdateErrorKeepsPreviousRoster(t *testing.T) {
	var s Store

	s.Update(&vatsim.Data{Pilots: []vatsim.Pilot{{Callsign: "UAL123"}}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.HasData != prev.HasData {
		t.Fatalf("HasData changed on error: got %v want %v", snap.HasData, prev.HasData)
	}
	if len(snap.Pilots) != 1 || snap.Pilots[0].Callsign != "UAL123" {
		t.Fatalf("roster changed on error: got %#v want %#v", snap.Pilots, prev.Pilots)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatalf("fresh store should not be offline")
	}

	s.Update(nil, errors.New("one"))
	if s.Snapshot().IsOffline() {
		t.Fatalf("one failure should not be offline yet")
	}

	s.Update(nil, errors.New("two"))
	snap := s.Snapshot()
	if !snap.IsOffline() || snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d IsOffline = %v, want 2/true", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(&vatsim.Data{}, nil)
	snap = s.Snapshot()
	if snap.IsOffline() || snap.ConsecutiveFailures != 0 {
		t.Fatalf("success should reset failures, got %d", snap.ConsecutiveFailures)
	}
}
