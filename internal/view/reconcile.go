// Package view derives everything the dashboard renders from the entity
// store and the held route. Derivations are pure and recomputed on every
// render; nothing here caches intermediate state.
package view

import (
	"math"

	"github.com/twpayne/go-geom"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/visionpay/fieldops/internal/panel"
	"github.com/visionpay/fieldops/internal/settings"
	"github.com/visionpay/fieldops/internal/state"
	"github.com/visionpay/fieldops/pkg/walker"
)

// FallbackCenter is the map center when no officer exists (Nairobi CBD).
var FallbackCenter = walker.LatLng{Lat: -1.2921, Lng: 36.8219}

// UnassignedLabel is displayed for members whose officer reference is
// absent or dangling.
const UnassignedLabel = "Unassigned"

var kes = message.NewPrinter(language.English)

// MapCenter returns the first officer's location, or the fallback when no
// officer exists.
func MapCenter(officers []walker.Officer) walker.LatLng {
	if len(officers) > 0 {
		return officers[0].Location
	}
	return FallbackCenter
}

// RoutePolyline builds the route's polyline as a lng/lat line string in
// stop order. Nil when there is no route or the route has zero stops.
func RoutePolyline(sel *state.RouteSelection) *geom.LineString {
	if sel == nil || len(sel.Route.Route) == 0 {
		return nil
	}
	flat := make([]float64, 0, 2*len(sel.Route.Route))
	for _, stop := range sel.Route.Route {
		flat = append(flat, stop.Member.Location.Lng, stop.Member.Location.Lat)
	}
	return geom.NewLineStringFlat(geom.XY, flat).SetSRID(4326)
}

// Completion is the officer's collection completion percentage, rounded to
// the nearest integer and defined as 0 when nothing is assigned.
func Completion(o walker.Officer) int {
	if o.MembersAssigned == 0 {
		return 0
	}
	return int(math.Round(float64(o.CollectionsToday) / float64(o.MembersAssigned) * 100))
}

// ZoneBuckets splits zones for the map view: low-risk zones are safe;
// medium is folded into the attention-worthy bucket alongside high. A zone
// lands in exactly one bucket.
func ZoneBuckets(zones []walker.RiskZone) (safe, highRisk []walker.RiskZone) {
	for _, z := range zones {
		if z.RiskLevel == walker.RiskLow {
			safe = append(safe, z)
		} else {
			highRisk = append(highRisk, z)
		}
	}
	return safe, highRisk
}

// ZoneAdvice is the per-tier guidance line shown in the analysis view,
// where mediums keep their own tag.
func ZoneAdvice(z walker.RiskZone) string {
	switch z.RiskLevel {
	case walker.RiskHigh:
		return "Requires immediate attention. Increase officer visits."
	case walker.RiskMedium:
		return "Monitor closely for trends."
	case walker.RiskLow:
		return "Safe zone. Maintain current schedule."
	}
	return ""
}

// FormatKES renders a monetary amount with thousands separators.
func FormatKES(amount float64) string {
	return kes.Sprintf("KES %v", number.Decimal(amount))
}

// OfficerCard is one officer as the overview panel renders it.
type OfficerCard struct {
	walker.Officer
	CompletionPct int `json:"completion_pct"`
}

// MemberCard is one member as the members panel renders it.
type MemberCard struct {
	walker.Member
	AmountDisplay    string `json:"amount_display"`
	OfficerName      string `json:"officer_name"`
	CanRecordPayment bool   `json:"can_record_payment"`
}

// RouteView is the held route plus its derived polyline, in [lat, lng]
// pairs for the map layer.
type RouteView struct {
	OfficerID          int                `json:"officer_id"`
	TotalMembers       int                `json:"total_members"`
	TotalDistanceKM    float64            `json:"total_distance_km"`
	EstimatedTimeHours float64            `json:"estimated_time_hours"`
	Stops              []walker.RouteStop `json:"stops"`
	Polyline           [][2]float64       `json:"polyline"`
}

// ZoneReport is one zone in the analysis view.
type ZoneReport struct {
	walker.RiskZone
	Advice string `json:"advice"`
}

// Model is the full reconciled dashboard view model.
type Model struct {
	Stats         walker.Stats             `json:"stats"`
	HaveStats     bool                     `json:"have_stats"`
	Officers      []OfficerCard            `json:"officers"`
	Members       []MemberCard             `json:"members"`
	MapCenter     walker.LatLng            `json:"map_center"`
	Route         *RouteView               `json:"route,omitempty"`
	SafeZones     []walker.RiskZone        `json:"safe_zones"`
	HighRiskZones []walker.RiskZone        `json:"high_risk_zones"`
	ZoneAnalysis  []ZoneReport             `json:"zone_analysis"`
	Insights      string                   `json:"insights,omitempty"`
	ActivePanel   panel.Panel              `json:"active_panel"`
	RadiusKM      int                      `json:"radius_km"`
	Payday        settings.PaydayFrequency `json:"payday_frequency"`
}

// Reconcile derives the dashboard model from the store, the panel
// controller, and the session settings.
func Reconcile(store *state.Store, panels *panel.Controller, set *settings.Settings) Model {
	officers := store.Officers()
	members := store.Members()
	zones := store.RiskZones()
	stats, haveStats := store.Stats()

	m := Model{
		Stats:       stats,
		HaveStats:   haveStats,
		MapCenter:   MapCenter(officers),
		Insights:    store.Insights(),
		ActivePanel: panels.Active(),
		RadiusKM:    set.RadiusKM(),
		Payday:      set.Frequency(),
	}

	m.Officers = make([]OfficerCard, 0, len(officers))
	for _, o := range officers {
		m.Officers = append(m.Officers, OfficerCard{Officer: o, CompletionPct: Completion(o)})
	}

	m.Members = make([]MemberCard, 0, len(members))
	for _, mem := range members {
		name := UnassignedLabel
		if mem.OfficerID != walker.UnassignedOfficer {
			if o, ok := store.OfficerByID(mem.OfficerID); ok {
				name = o.Name
			}
		}
		m.Members = append(m.Members, MemberCard{
			Member:           mem,
			AmountDisplay:    FormatKES(mem.Amount),
			OfficerName:      name,
			CanRecordPayment: mem.PaymentStatus == walker.PaymentPending,
		})
	}

	if sel := store.Route(); sel != nil {
		rv := &RouteView{
			OfficerID:          sel.OfficerID,
			TotalMembers:       sel.Route.TotalMembers,
			TotalDistanceKM:    sel.Route.TotalDistanceKM,
			EstimatedTimeHours: sel.Route.EstimatedTimeHours,
			Stops:              sel.Route.Route,
		}
		if ls := RoutePolyline(sel); ls != nil {
			coords := ls.Coords()
			rv.Polyline = make([][2]float64, 0, len(coords))
			for _, c := range coords {
				rv.Polyline = append(rv.Polyline, [2]float64{c.Y(), c.X()})
			}
		}
		m.Route = rv
	}

	m.SafeZones, m.HighRiskZones = ZoneBuckets(zones)

	m.ZoneAnalysis = make([]ZoneReport, 0, len(zones))
	for _, z := range zones {
		m.ZoneAnalysis = append(m.ZoneAnalysis, ZoneReport{RiskZone: z, Advice: ZoneAdvice(z)})
	}

	return m
}
