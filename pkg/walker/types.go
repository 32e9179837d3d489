package walker

// LatLng is a WGS84 coordinate pair as the walker API serializes it.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stats is the response from GetDashboardStats. Values are displayed
// verbatim; the client never recomputes them.
type Stats struct {
	TotalMembers   int     `json:"total_members"`
	PaidToday      int     `json:"paid_today"`
	OverdueMembers int     `json:"overdue_members"`
	TotalCollected float64 `json:"total_collected"`
	CollectionRate float64 `json:"collection_rate"`
}

// Officer is a field agent with an assigned member load. The server-side
// assignment and collection jobs are the only writers of the counters.
type Officer struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Location         LatLng `json:"location"`
	MembersAssigned  int    `json:"members_assigned"`
	CollectionsToday int    `json:"collections_today"`
}

// PaymentStatus is a member's payment state.
type PaymentStatus string

// Payment states accepted by the walker API.
const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// UnassignedOfficer is the sentinel officer id meaning "no officer".
const UnassignedOfficer = 0

// Member is a microfinance client with a geolocated residence and an
// amount owed. OfficerID zero means unassigned.
type Member struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Location      LatLng        `json:"location"`
	Amount        float64       `json:"amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OfficerID     int           `json:"officer_id"`
	PaymentDate   string        `json:"payment_date,omitempty"`
}

// RiskLevel is a risk zone severity tier.
type RiskLevel string

// Severity tiers produced by AnalyzeRiskZones.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskZone is a server-computed geographic cluster with an aggregate
// overdue rate. Read-only to the client; replaced wholesale on refresh.
type RiskZone struct {
	ZoneName     string    `json:"zone_name"`
	RiskLevel    RiskLevel `json:"risk_level"`
	OverdueRate  float64   `json:"overdue_rate"`
	MembersCount int       `json:"members_count"`
}

// RouteMember is the member snapshot embedded in a route stop.
type RouteMember struct {
	Name     string `json:"name"`
	Location LatLng `json:"location"`
}

// RouteStop is one stop on an optimized route.
type RouteStop struct {
	Member     RouteMember `json:"member"`
	DistanceKM float64     `json:"distance_km"`
}

// Route is the response from OptimizeRoute: an ordered visitation
// sequence for one officer's assigned members.
type Route struct {
	TotalMembers       int         `json:"total_members"`
	TotalDistanceKM    float64     `json:"total_distance_km"`
	EstimatedTimeHours float64     `json:"estimated_time_hours"`
	Route              []RouteStop `json:"route"`
}

// AssignResult is the response from AssignMembersToOfficers. The count is
// used only for a user-facing message.
type AssignResult struct {
	AssignedCount int `json:"assigned_count"`
}

// Summary is the response from GenerateAISummary.
type Summary struct {
	Summary string `json:"summary"`
}

// AddOfficerRequest is the request body for AddOfficer.
type AddOfficerRequest struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddMemberRequest is the request body for AddMember.
type AddMemberRequest struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	Amount        float64       `json:"amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OfficerID     int           `json:"officer_id"`
}

// PaymentRequest is the request body for RecordPayment. Amount and
// OfficerID are the client's cached values for the member.
type PaymentRequest struct {
	MemberID  int     `json:"member_id"`
	Amount    float64 `json:"amount"`
	OfficerID int     `json:"officer_id"`
}
