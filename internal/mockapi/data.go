// Package mockapi is a self-contained walker API for local development
// and demos. It serves the same ten operations as the production walker
// backend over plausible in-memory data, optionally persisted to SQLite.
package mockapi

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rotisserie/eris"

	"github.com/visionpay/fieldops/pkg/walker"
)

// ErrConflict marks a duplicate-id insert.
var ErrConflict = eris.New("mockapi: id already exists")

// ErrNotFound marks a lookup for an id that does not exist.
var ErrNotFound = eris.New("mockapi: not found")

// Dataset is the mock backend's state. All operations are safe for
// concurrent use. When a store is attached, mutations are written through
// to it before they are applied in memory.
type Dataset struct {
	mu       sync.Mutex
	stats    walker.Stats
	officers []walker.Officer
	members  []walker.Member
	zones    []walker.RiskZone
	store    *SQLiteStore
}

// NewDataset returns a dataset seeded with the demo fixtures.
func NewDataset() *Dataset {
	d := &Dataset{}
	d.seed()
	return d
}

// seed loads the demo fixtures: two officers and three members around
// Nairobi, two risk zones, and the canned headline stats.
func (d *Dataset) seed() {
	d.stats = walker.Stats{
		TotalMembers:   4,
		PaidToday:      2,
		OverdueMembers: 1,
		TotalCollected: 1100,
		CollectionRate: 50,
	}
	d.officers = []walker.Officer{
		{ID: 1, Name: "John Kamau", Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}, MembersAssigned: 45, CollectionsToday: 12},
		{ID: 2, Name: "Mary Njeri", Location: walker.LatLng{Lat: -1.3012, Lng: 36.8345}, MembersAssigned: 38, CollectionsToday: 15},
	}
	d.members = []walker.Member{
		{ID: 1, Name: "Grace Wanjiku", Amount: 500, PaymentStatus: walker.PaymentPaid, OfficerID: 1, Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}},
		{ID: 2, Name: "David Mwangi", Amount: 750, PaymentStatus: walker.PaymentPending, OfficerID: 1, Location: walker.LatLng{Lat: -1.2945, Lng: 36.8267}},
		{ID: 3, Name: "Sarah Akinyi", Amount: 1000, PaymentStatus: walker.PaymentOverdue, OfficerID: 1, Location: walker.LatLng{Lat: -1.2889, Lng: 36.8201}},
	}
	d.zones = []walker.RiskZone{
		{ZoneName: "Kibera Zone A", RiskLevel: walker.RiskHigh, OverdueRate: 35, MembersCount: 23},
		{ZoneName: "Eastleigh Zone B", RiskLevel: walker.RiskMedium, OverdueRate: 18, MembersCount: 41},
	}
}

// Stats returns the headline counters.
func (d *Dataset) Stats() walker.Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Officers returns a copy of all officers.
func (d *Dataset) Officers() []walker.Officer {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]walker.Officer, len(d.officers))
	copy(out, d.officers)
	return out
}

// Members returns a copy of all members.
func (d *Dataset) Members() []walker.Member {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]walker.Member, len(d.members))
	copy(out, d.members)
	return out
}

// RiskZones returns a copy of the analyzed zones.
func (d *Dataset) RiskZones() []walker.RiskZone {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]walker.RiskZone, len(d.zones))
	copy(out, d.zones)
	return out
}

// AddOfficer inserts a new officer. A duplicate id is a conflict.
func (d *Dataset) AddOfficer(req walker.AddOfficerRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, o := range d.officers {
		if o.ID == req.ID {
			return eris.Wrapf(ErrConflict, "officer %d", req.ID)
		}
	}

	officer := walker.Officer{
		ID:       req.ID,
		Name:     req.Name,
		Location: walker.LatLng{Lat: req.Latitude, Lng: req.Longitude},
	}
	if d.store != nil {
		if err := d.store.InsertOfficer(officer); err != nil {
			return err
		}
	}
	d.officers = append(d.officers, officer)
	return nil
}

// AddMember inserts a new member. A duplicate id is a conflict.
func (d *Dataset) AddMember(req walker.AddMemberRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, m := range d.members {
		if m.ID == req.ID {
			return eris.Wrapf(ErrConflict, "member %d", req.ID)
		}
	}

	member := walker.Member{
		ID:            req.ID,
		Name:          req.Name,
		Location:      walker.LatLng{Lat: req.Latitude, Lng: req.Longitude},
		Amount:        req.Amount,
		PaymentStatus: req.PaymentStatus,
		OfficerID:     req.OfficerID,
	}
	if d.store != nil {
		if err := d.store.InsertMember(member); err != nil {
			return err
		}
	}
	d.members = append(d.members, member)

	d.stats.TotalMembers++
	if member.PaymentStatus == walker.PaymentOverdue {
		d.stats.OverdueMembers++
	}
	d.recomputeRate()
	return nil
}

// Assign gives every member the nearest officer within radiusKM, or
// leaves it unassigned when no officer is close enough. Returns the
// number of members holding an assignment afterwards.
func (d *Dataset) Assign(radiusKM int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	assigned := 0
	loads := make(map[int]int, len(d.officers))
	for i := range d.members {
		m := &d.members[i]
		m.OfficerID = walker.UnassignedOfficer

		best := math.MaxFloat64
		for _, o := range d.officers {
			dist := haversineKM(m.Location.Lat, m.Location.Lng, o.Location.Lat, o.Location.Lng)
			if dist <= float64(radiusKM) && dist < best {
				best = dist
				m.OfficerID = o.ID
			}
		}
		if m.OfficerID != walker.UnassignedOfficer {
			assigned++
			loads[m.OfficerID]++
		}
		if d.store != nil {
			if err := d.store.UpdateMemberAssignment(m.ID, m.OfficerID); err != nil {
				return 0, err
			}
		}
	}

	for i := range d.officers {
		d.officers[i].MembersAssigned = loads[d.officers[i].ID]
		if d.store != nil {
			if err := d.store.UpdateOfficerCounters(d.officers[i]); err != nil {
				return 0, err
			}
		}
	}
	return assigned, nil
}

// Route builds a nearest-neighbour visitation order over the officer's
// assigned members, starting from the officer's own location. Walking
// pace of 5 km/h plus fifteen minutes per visit.
func (d *Dataset) Route(officerID int) (*walker.Route, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var officer *walker.Officer
	for i := range d.officers {
		if d.officers[i].ID == officerID {
			officer = &d.officers[i]
			break
		}
	}
	if officer == nil {
		return nil, eris.Wrapf(ErrNotFound, "officer %d", officerID)
	}

	var pending []walker.Member
	for _, m := range d.members {
		if m.OfficerID == officerID {
			pending = append(pending, m)
		}
	}

	route := &walker.Route{TotalMembers: len(pending)}
	at := officer.Location
	for len(pending) > 0 {
		bestIdx, bestDist := 0, math.MaxFloat64
		for i, m := range pending {
			if dist := haversineKM(at.Lat, at.Lng, m.Location.Lat, m.Location.Lng); dist < bestDist {
				bestIdx, bestDist = i, dist
			}
		}
		next := pending[bestIdx]
		pending = append(pending[:bestIdx], pending[bestIdx+1:]...)

		route.Route = append(route.Route, walker.RouteStop{
			Member:     walker.RouteMember{Name: next.Name, Location: next.Location},
			DistanceKM: round2(bestDist),
		})
		route.TotalDistanceKM += bestDist
		at = next.Location
	}

	route.TotalDistanceKM = round2(route.TotalDistanceKM)
	route.EstimatedTimeHours = round2(route.TotalDistanceKM/5 + 0.25*float64(route.TotalMembers))
	return route, nil
}

// RecordPayment marks a member paid and rolls the collection counters.
func (d *Dataset) RecordPayment(req walker.PaymentRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var member *walker.Member
	for i := range d.members {
		if d.members[i].ID == req.MemberID {
			member = &d.members[i]
			break
		}
	}
	if member == nil {
		return eris.Wrapf(ErrNotFound, "member %d", req.MemberID)
	}

	wasOverdue := member.PaymentStatus == walker.PaymentOverdue
	paidOn := time.Now().Format("2006-01-02")
	if d.store != nil {
		if err := d.store.UpdateMemberPayment(member.ID, paidOn); err != nil {
			return err
		}
	}

	member.PaymentStatus = walker.PaymentPaid
	member.PaymentDate = paidOn

	d.stats.PaidToday++
	d.stats.TotalCollected += req.Amount
	if wasOverdue && d.stats.OverdueMembers > 0 {
		d.stats.OverdueMembers--
	}
	d.recomputeRate()

	for i := range d.officers {
		if d.officers[i].ID == member.OfficerID {
			d.officers[i].CollectionsToday++
			if d.store != nil {
				if err := d.store.UpdateOfficerCounters(d.officers[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Summary produces a short analysis of the current collection picture.
func (d *Dataset) Summary() walker.Summary {
	d.mu.Lock()
	defer d.mu.Unlock()

	overdue := 0
	for _, m := range d.members {
		if m.PaymentStatus == walker.PaymentOverdue {
			overdue++
		}
	}

	zones := make([]walker.RiskZone, len(d.zones))
	copy(zones, d.zones)
	sort.Slice(zones, func(i, j int) bool { return zones[i].OverdueRate > zones[j].OverdueRate })

	text := fmt.Sprintf(
		"AI analysis: %d of %d members are overdue. Collection rate is %.0f%%.",
		overdue, len(d.members), d.stats.CollectionRate,
	)
	if len(zones) > 0 {
		text += fmt.Sprintf(
			" Highest-risk zone is %s at %.0f%% overdue; prioritize officer visits there.",
			zones[0].ZoneName, zones[0].OverdueRate,
		)
	}
	return walker.Summary{Summary: text}
}

func (d *Dataset) recomputeRate() {
	if d.stats.TotalMembers == 0 {
		d.stats.CollectionRate = 0
		return
	}
	d.stats.CollectionRate = round2(float64(d.stats.PaidToday) / float64(d.stats.TotalMembers) * 100)
}

// haversineKM is the great-circle distance between two WGS84 points.
func haversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKM = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
