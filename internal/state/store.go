// Package state holds the client's view of the remote data: officers,
// members, risk zones, dashboard statistics, and the last computed route.
// It is a pure container; every field is replaced wholesale, never merged.
package state

import (
	"sync"

	"github.com/visionpay/fieldops/pkg/walker"
)

// RouteSelection pairs a route with the officer it was requested for. A
// route always corresponds to the most recently requested officer.
type RouteSelection struct {
	OfficerID int
	Route     walker.Route
}

// Store is the entity store. The data sync controller is the only writer
// of the fetched collections; the route and insights workflows own their
// respective fields.
type Store struct {
	mu        sync.RWMutex
	stats     walker.Stats
	hasStats  bool
	officers  []walker.Officer
	members   []walker.Member
	riskZones []walker.RiskZone
	route     *RouteSelection
	insights  string
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SetStats replaces the dashboard statistics.
func (s *Store) SetStats(stats walker.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	s.hasStats = true
}

// Stats returns the dashboard statistics and whether any have been fetched.
func (s *Store) Stats() (walker.Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.hasStats
}

// SetOfficers replaces the officer collection.
func (s *Store) SetOfficers(officers []walker.Officer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.officers = officers
}

// Officers returns a copy of the officer collection.
func (s *Store) Officers() []walker.Officer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]walker.Officer, len(s.officers))
	copy(out, s.officers)
	return out
}

// OfficerByID looks up an officer. A miss is not an error; dangling
// references degrade to "Unassigned" at display time.
func (s *Store) OfficerByID(id int) (walker.Officer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.officers {
		if o.ID == id {
			return o, true
		}
	}
	return walker.Officer{}, false
}

// SetMembers replaces the member collection.
func (s *Store) SetMembers(members []walker.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = members
}

// Members returns a copy of the member collection.
func (s *Store) Members() []walker.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]walker.Member, len(s.members))
	copy(out, s.members)
	return out
}

// MemberByID looks up a member by identifier.
func (s *Store) MemberByID(id int) (walker.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return walker.Member{}, false
}

// SetRiskZones replaces the risk zone collection. Zones are regenerated
// wholesale on every refresh; there is no incremental merge.
func (s *Store) SetRiskZones(zones []walker.RiskZone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riskZones = zones
}

// RiskZones returns a copy of the risk zone collection.
func (s *Store) RiskZones() []walker.RiskZone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]walker.RiskZone, len(s.riskZones))
	copy(out, s.riskZones)
	return out
}

// SetRoute replaces the current route selection. Selecting a new officer's
// route discards the previous one entirely.
func (s *Store) SetRoute(officerID int, route walker.Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = &RouteSelection{OfficerID: officerID, Route: route}
}

// ClearRoute drops the current route selection.
func (s *Store) ClearRoute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = nil
}

// Route returns the current route selection, or nil when none is held.
func (s *Store) Route() *RouteSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.route == nil {
		return nil
	}
	sel := *s.route
	return &sel
}

// SetInsights stores the latest AI analysis text.
func (s *Store) SetInsights(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights = text
}

// Insights returns the latest AI analysis text.
func (s *Store) Insights() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.insights
}
