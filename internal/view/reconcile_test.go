package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionpay/fieldops/internal/panel"
	"github.com/visionpay/fieldops/internal/settings"
	"github.com/visionpay/fieldops/internal/state"
	"github.com/visionpay/fieldops/pkg/walker"
)

func TestMapCenter(t *testing.T) {
	officers := []walker.Officer{
		{ID: 1, Location: walker.LatLng{Lat: -1.3012, Lng: 36.8345}},
		{ID: 2, Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}},
	}
	assert.Equal(t, walker.LatLng{Lat: -1.3012, Lng: 36.8345}, MapCenter(officers))
	assert.Equal(t, FallbackCenter, MapCenter(nil))
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name     string
		assigned int
		today    int
		want     int
	}{
		{name: "zero_assigned", assigned: 0, today: 12, want: 0},
		{name: "partial", assigned: 45, today: 12, want: 27},
		{name: "rounds_up", assigned: 38, today: 15, want: 39},
		{name: "complete", assigned: 10, today: 10, want: 100},
		{name: "none_collected", assigned: 40, today: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Completion(walker.Officer{MembersAssigned: tt.assigned, CollectionsToday: tt.today})
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestRoutePolyline(t *testing.T) {
	sel := &state.RouteSelection{
		OfficerID: 1,
		Route: walker.Route{
			Route: []walker.RouteStop{
				{Member: walker.RouteMember{Name: "Grace Wanjiku", Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}}},
				{Member: walker.RouteMember{Name: "David Mwangi", Location: walker.LatLng{Lat: -1.2945, Lng: 36.8267}}},
			},
		},
	}

	ls := RoutePolyline(sel)
	require.NotNil(t, ls)
	assert.Equal(t, 4326, ls.SRID())

	coords := ls.Coords()
	require.Len(t, coords, 2)
	// XY order: lng first.
	assert.InDelta(t, 36.8219, coords[0].X(), 0.0001)
	assert.InDelta(t, -1.2921, coords[0].Y(), 0.0001)
	assert.InDelta(t, 36.8267, coords[1].X(), 0.0001)
}

func TestRoutePolylineEmpty(t *testing.T) {
	assert.Nil(t, RoutePolyline(nil))
	assert.Nil(t, RoutePolyline(&state.RouteSelection{OfficerID: 1}))
}

func TestZoneBuckets(t *testing.T) {
	zones := []walker.RiskZone{
		{ZoneName: "Kibera Zone A", RiskLevel: walker.RiskHigh},
		{ZoneName: "Eastleigh Zone B", RiskLevel: walker.RiskMedium},
		{ZoneName: "Karen Zone C", RiskLevel: walker.RiskLow},
	}

	safe, highRisk := ZoneBuckets(zones)

	require.Len(t, safe, 1)
	assert.Equal(t, "Karen Zone C", safe[0].ZoneName)

	// Medium is folded into the attention-worthy bucket.
	require.Len(t, highRisk, 2)
	assert.Equal(t, "Kibera Zone A", highRisk[0].ZoneName)
	assert.Equal(t, "Eastleigh Zone B", highRisk[1].ZoneName)

	// No zone appears in both buckets.
	for _, s := range safe {
		for _, h := range highRisk {
			assert.NotEqual(t, s.ZoneName, h.ZoneName)
		}
	}
}

func TestZoneAdvice(t *testing.T) {
	assert.Contains(t, ZoneAdvice(walker.RiskZone{RiskLevel: walker.RiskHigh}), "immediate attention")
	assert.Contains(t, ZoneAdvice(walker.RiskZone{RiskLevel: walker.RiskMedium}), "Monitor")
	assert.Contains(t, ZoneAdvice(walker.RiskZone{RiskLevel: walker.RiskLow}), "Safe zone")
}

func TestFormatKES(t *testing.T) {
	assert.Equal(t, "KES 1,100", FormatKES(1100))
	assert.Equal(t, "KES 500", FormatKES(500))
}

func TestReconcile(t *testing.T) {
	store := state.New()
	store.SetStats(walker.Stats{TotalMembers: 4, PaidToday: 2, OverdueMembers: 1, TotalCollected: 1100, CollectionRate: 50})
	store.SetOfficers([]walker.Officer{
		{ID: 1, Name: "John Kamau", Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}, MembersAssigned: 45, CollectionsToday: 12},
	})
	store.SetMembers([]walker.Member{
		{ID: 1, Name: "Grace Wanjiku", Amount: 500, PaymentStatus: walker.PaymentPaid, OfficerID: 1},
		{ID: 2, Name: "David Mwangi", Amount: 750, PaymentStatus: walker.PaymentPending, OfficerID: 1},
		{ID: 3, Name: "Sarah Akinyi", Amount: 1000, PaymentStatus: walker.PaymentOverdue, OfficerID: 99},
	})
	store.SetRiskZones([]walker.RiskZone{
		{ZoneName: "Kibera Zone A", RiskLevel: walker.RiskHigh, OverdueRate: 35, MembersCount: 23},
		{ZoneName: "Eastleigh Zone B", RiskLevel: walker.RiskMedium, OverdueRate: 18, MembersCount: 41},
	})

	panels := panel.NewController()
	set := settings.New()

	m := Reconcile(store, panels, set)

	// Stats pass through verbatim; the client never recomputes them.
	assert.True(t, m.HaveStats)
	assert.Equal(t, 4, m.Stats.TotalMembers)
	assert.Equal(t, 2, m.Stats.PaidToday)
	assert.Equal(t, 1, m.Stats.OverdueMembers)
	assert.InDelta(t, 1100, m.Stats.TotalCollected, 0.001)

	require.Len(t, m.Officers, 1)
	assert.Equal(t, 27, m.Officers[0].CompletionPct)

	require.Len(t, m.Members, 3)
	assert.Equal(t, "John Kamau", m.Members[0].OfficerName)
	assert.False(t, m.Members[0].CanRecordPayment)
	assert.True(t, m.Members[1].CanRecordPayment)
	assert.Equal(t, "KES 750", m.Members[1].AmountDisplay)

	// Dangling officer reference degrades to the unassigned label.
	assert.Equal(t, UnassignedLabel, m.Members[2].OfficerName)

	assert.Empty(t, m.SafeZones)
	assert.Len(t, m.HighRiskZones, 2)
	require.Len(t, m.ZoneAnalysis, 2)
	assert.Contains(t, m.ZoneAnalysis[0].Advice, "immediate attention")

	assert.Nil(t, m.Route)
	assert.Equal(t, panel.Overview, m.ActivePanel)
	assert.Equal(t, settings.DefaultRadiusKM, m.RadiusKM)
}

func TestReconcileRouteReplacement(t *testing.T) {
	store := state.New()
	panels := panel.NewController()
	set := settings.New()

	store.SetRoute(1, walker.Route{TotalMembers: 2, Route: []walker.RouteStop{
		{Member: walker.RouteMember{Name: "Grace Wanjiku", Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}}},
		{Member: walker.RouteMember{Name: "David Mwangi", Location: walker.LatLng{Lat: -1.2945, Lng: 36.8267}}},
	}})
	store.SetRoute(2, walker.Route{TotalMembers: 1, Route: []walker.RouteStop{
		{Member: walker.RouteMember{Name: "Peter Otieno", Location: walker.LatLng{Lat: -1.3100, Lng: 36.8400}}},
	}})

	m := Reconcile(store, panels, set)
	require.NotNil(t, m.Route)
	assert.Equal(t, 2, m.Route.OfficerID)

	// The polyline reflects only the most recent officer's stops.
	require.Len(t, m.Route.Polyline, 1)
	assert.InDelta(t, -1.3100, m.Route.Polyline[0][0], 0.0001)
	assert.InDelta(t, 36.8400, m.Route.Polyline[0][1], 0.0001)
}
