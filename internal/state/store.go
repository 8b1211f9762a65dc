package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// Snapshot represents the latest roster available to the UI.
type Snapshot struct {
	General             vatsim.General
	Pilots              []vatsim.Pilot
	Controllers         []vatsim.Controller
	Facilities          []vatsim.ReferenceItem
	Ratings             []vatsim.ReferenceItem
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the datafeed has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// RatingShort maps a controller rating id to its short name using the
// snapshot's ratings table.
func (s Snapshot) RatingShort(id int) string {
	d := vatsim.Data{Ratings: s.Ratings}
	return d.RatingShort(id)
}

// FacilityShort maps a facility id to its short name.
func (s Snapshot) FacilityShort(id int) string {
	d := vatsim.Data{Facilities: s.Facilities}
	return d.FacilityShort(id)
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(data *vatsim.Data, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if data != nil {
		s.snapshot.General = data.General
		s.snapshot.Pilots = clonePilots(data.Pilots)
		s.snapshot.Controllers = cloneControllers(data.Controllers)
		s.snapshot.Facilities = cloneRefs(data.Facilities)
		s.snapshot.Ratings = cloneRefs(data.Ratings)
		s.snapshot.HasData = true
	} else {
		s.snapshot.HasData = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Pilots = clonePilots(s.snapshot.Pilots)
	snap.Controllers = cloneControllers(s.snapshot.Controllers)
	snap.Facilities = cloneRefs(s.snapshot.Facilities)
	snap.Ratings = cloneRefs(s.snapshot.Ratings)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePilots(items []vatsim.Pilot) []vatsim.Pilot {
	if len(items) == 0 {
		return nil
	}
	dup := make([]vatsim.Pilot, len(items))
	copy(dup, items)
	return dup
}

func cloneControllers(items []vatsim.Controller) []vatsim.Controller {
	if len(items) == 0 {
		return nil
	}
	dup := make([]vatsim.Controller, len(items))
	copy(dup, items)
	return dup
}

func cloneRefs(items []vatsim.ReferenceItem) []vatsim.ReferenceItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]vatsim.ReferenceItem, len(items))
	copy(dup, items)
	return dup
}
