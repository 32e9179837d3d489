// Package forms holds the pending form drafts: raw, not-yet-submitted
// input buffers with validation and numeric coercion at the submit
// boundary.
package forms

import (
	"strconv"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/visionpay/fieldops/pkg/walker"
)

// FormType names which pending draft a location capture targets.
type FormType string

// The two capturable forms.
const (
	FormOfficer FormType = "officer"
	FormMember  FormType = "member"
)

// OfficerDraft is the raw add-officer input buffer.
type OfficerDraft struct {
	ID        string
	Name      string
	Latitude  string
	Longitude string
}

// Validate rejects the draft when any mandatory field is empty. No network
// call is made for an invalid draft.
func (d OfficerDraft) Validate() error {
	switch {
	case d.ID == "":
		return eris.New("officer draft: id is required")
	case d.Name == "":
		return eris.New("officer draft: name is required")
	case d.Latitude == "":
		return eris.New("officer draft: latitude is required")
	case d.Longitude == "":
		return eris.New("officer draft: longitude is required")
	}
	return nil
}

// ToRequest coerces the draft into the wire request.
func (d OfficerDraft) ToRequest() (walker.AddOfficerRequest, error) {
	if err := d.Validate(); err != nil {
		return walker.AddOfficerRequest{}, err
	}

	id, err := parseID(d.ID)
	if err != nil {
		return walker.AddOfficerRequest{}, eris.Wrap(err, "officer draft")
	}
	lat, lng, err := parseCoords(d.Latitude, d.Longitude)
	if err != nil {
		return walker.AddOfficerRequest{}, eris.Wrap(err, "officer draft")
	}

	return walker.AddOfficerRequest{
		ID:        id,
		Name:      d.Name,
		Latitude:  lat,
		Longitude: lng,
	}, nil
}

// MemberDraft is the raw add-member input buffer. PaymentDate is captured
// but not part of the AddMember wire contract. OfficerID is advisory; the
// server-side assignment job owns the real mapping.
type MemberDraft struct {
	ID            string
	Name          string
	Latitude      string
	Longitude     string
	Amount        string
	PaymentStatus string
	OfficerID     string
	PaymentDate   string
}

// Validate rejects the draft when any mandatory field is empty. OfficerID,
// PaymentStatus, and PaymentDate are optional.
func (d MemberDraft) Validate() error {
	switch {
	case d.ID == "":
		return eris.New("member draft: id is required")
	case d.Name == "":
		return eris.New("member draft: name is required")
	case d.Latitude == "":
		return eris.New("member draft: latitude is required")
	case d.Longitude == "":
		return eris.New("member draft: longitude is required")
	case d.Amount == "":
		return eris.New("member draft: amount is required")
	}
	return nil
}

// ToRequest coerces the draft into the wire request. An absent officer
// assignment defaults to the unassigned sentinel, an absent payment status
// to pending.
func (d MemberDraft) ToRequest() (walker.AddMemberRequest, error) {
	if err := d.Validate(); err != nil {
		return walker.AddMemberRequest{}, err
	}

	id, err := parseID(d.ID)
	if err != nil {
		return walker.AddMemberRequest{}, eris.Wrap(err, "member draft")
	}
	lat, lng, err := parseCoords(d.Latitude, d.Longitude)
	if err != nil {
		return walker.AddMemberRequest{}, eris.Wrap(err, "member draft")
	}

	amount, err := strconv.ParseFloat(d.Amount, 64)
	if err != nil || amount <= 0 {
		return walker.AddMemberRequest{}, eris.Errorf("member draft: amount %q is not a positive number", d.Amount)
	}

	officerID := walker.UnassignedOfficer
	if d.OfficerID != "" {
		officerID, err = strconv.Atoi(d.OfficerID)
		if err != nil || officerID < 0 {
			officerID = walker.UnassignedOfficer
		}
	}

	status := walker.PaymentStatus(d.PaymentStatus)
	switch status {
	case walker.PaymentPending, walker.PaymentPaid, walker.PaymentOverdue:
	case "":
		status = walker.PaymentPending
	default:
		return walker.AddMemberRequest{}, eris.Errorf("member draft: unknown payment status %q", d.PaymentStatus)
	}

	return walker.AddMemberRequest{
		ID:            id,
		Name:          d.Name,
		Latitude:      lat,
		Longitude:     lng,
		Amount:        amount,
		PaymentStatus: status,
		OfficerID:     officerID,
	}, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, eris.Errorf("id %q is not a positive integer", raw)
	}
	return id, nil
}

func parseCoords(rawLat, rawLng string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, eris.Errorf("latitude %q is out of range", rawLat)
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, eris.Errorf("longitude %q is out of range", rawLng)
	}
	return lat, lng, nil
}

// Drafts owns the two pending drafts for a session. Coordinates go through
// SetLocation so the capture machine stays the single writer of location
// fields while a capture is engaged.
type Drafts struct {
	mu      sync.Mutex
	officer OfficerDraft
	member  MemberDraft
}

// NewDrafts creates empty drafts.
func NewDrafts() *Drafts {
	return &Drafts{}
}

// Officer returns a copy of the officer draft.
func (d *Drafts) Officer() OfficerDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.officer
}

// Member returns a copy of the member draft.
func (d *Drafts) Member() MemberDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.member
}

// SetOfficer replaces the officer draft.
func (d *Drafts) SetOfficer(draft OfficerDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.officer = draft
}

// SetMember replaces the member draft.
func (d *Drafts) SetMember(draft MemberDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.member = draft
}

// SetLocation writes captured coordinates into the named draft.
func (d *Drafts) SetLocation(form FormType, lat, lng string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch form {
	case FormOfficer:
		d.officer.Latitude = lat
		d.officer.Longitude = lng
	case FormMember:
		d.member.Latitude = lat
		d.member.Longitude = lng
	}
}

// ResetOfficer clears the officer draft after a successful submit.
func (d *Drafts) ResetOfficer() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.officer = OfficerDraft{}
}

// ResetMember clears the member draft after a successful submit.
func (d *Drafts) ResetMember() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.member = MemberDraft{}
}
