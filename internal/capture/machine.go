// Package capture implements the location capture state machine: how a
// pending form acquires a latitude/longitude, either from the device
// geolocation capability or from a map-click listening mode.
package capture

import (
	"context"
	"strconv"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/visionpay/fieldops/internal/forms"
	"github.com/visionpay/fieldops/internal/notify"
	"github.com/visionpay/fieldops/internal/panel"
)

// State is the machine's current mode.
type State string

// Machine states. Idle is both the initial and the terminal state.
const (
	StateIdle             State = "idle"
	StateAwaitingDevice   State = "awaiting_device_location"
	StateAwaitingMapClick State = "awaiting_map_click"
)

// Geolocator is the single-shot "get current position" capability. No
// accuracy bound is guaranteed.
type Geolocator interface {
	Current(ctx context.Context) (lat, lng float64, err error)
}

// Machine drives location capture for the pending drafts. At most one
// capture request is active at a time; starting a new one retargets the
// pending request (last request wins, no queue). There is no cancellation
// beyond abandoning the mode.
type Machine struct {
	mu     sync.Mutex
	state  State
	target forms.FormType

	drafts   *forms.Drafts
	panels   *panel.Controller
	notifier notify.Notifier
	geo      Geolocator
}

// NewMachine creates an idle capture machine.
func NewMachine(drafts *forms.Drafts, panels *panel.Controller, notifier notify.Notifier, geo Geolocator) *Machine {
	return &Machine{
		state:    StateIdle,
		drafts:   drafts,
		panels:   panels,
		notifier: notifier,
		geo:      geo,
	}
}

// State returns the current state and, when not idle, the targeted form.
func (m *Machine) State() (State, forms.FormType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.target
}

// CaptureDeviceLocation asks the device for its current position and
// writes it into the named draft. Failure is reported to the user and the
// machine returns to idle either way.
func (m *Machine) CaptureDeviceLocation(ctx context.Context, form forms.FormType) error {
	if m.geo == nil {
		err := eris.New("capture: no geolocation capability available")
		notify.Error(m.notifier, "Error getting location: %v", err)
		return err
	}

	m.mu.Lock()
	m.state = StateAwaitingDevice
	m.target = form
	m.mu.Unlock()

	lat, lng, err := m.geo.Current(ctx)

	m.mu.Lock()
	// The pending request may have been retargeted while the device
	// responded; the result goes to whichever form is targeted now.
	target := m.target
	m.state = StateIdle
	m.mu.Unlock()

	if err != nil {
		notify.Error(m.notifier, "Error getting location")
		return eris.Wrap(err, "capture: device geolocation")
	}

	latStr, lngStr := formatCoords(lat, lng)
	m.drafts.SetLocation(target, latStr, lngStr)
	notify.Success(m.notifier, "Location captured: %s, %s", latStr, lngStr)
	return nil
}

// BeginMapCapture closes any open modal, forces the map panel, and enters
// listening mode: the next map click is interpreted as a location pick for
// the named form.
func (m *Machine) BeginMapCapture(form forms.FormType) {
	m.panels.CloseModal()
	m.panels.ForceMap()

	m.mu.Lock()
	m.state = StateAwaitingMapClick
	m.target = form
	m.mu.Unlock()

	notify.Info(m.notifier, "Click the map to set the %s location", form)
}

// HandleMapClick consumes one map click while in listening mode, writing
// the clicked coordinates into the targeted draft. Clicks while idle are
// ignored. Returns whether the click was consumed.
func (m *Machine) HandleMapClick(lat, lng float64) bool {
	m.mu.Lock()
	if m.state != StateAwaitingMapClick {
		m.mu.Unlock()
		return false
	}
	target := m.target
	m.state = StateIdle
	m.mu.Unlock()

	latStr, lngStr := formatCoords(lat, lng)
	m.drafts.SetLocation(target, latStr, lngStr)
	notify.Success(m.notifier, "Location captured: %s, %s", latStr, lngStr)
	return true
}

// formatCoords renders coordinates at the 6-decimal precision the forms
// expect.
func formatCoords(lat, lng float64) (string, string) {
	return strconv.FormatFloat(lat, 'f', 6, 64), strconv.FormatFloat(lng, 'f', 6, 64)
}
