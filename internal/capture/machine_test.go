package capture

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionpay/fieldops/internal/forms"
	"github.com/visionpay/fieldops/internal/notify"
	"github.com/visionpay/fieldops/internal/panel"
)

type stubGeolocator struct {
	lat, lng float64
	err      error
}

func (s stubGeolocator) Current(context.Context) (float64, float64, error) {
	return s.lat, s.lng, s.err
}

func newTestMachine(geo Geolocator) (*Machine, *forms.Drafts, *panel.Controller, *notify.Feed) {
	drafts := forms.NewDrafts()
	panels := panel.NewController()
	feed := notify.NewFeed(0)
	return NewMachine(drafts, panels, feed, geo), drafts, panels, feed
}

func TestInitialStateIdle(t *testing.T) {
	m, _, _, _ := newTestMachine(nil)
	st, _ := m.State()
	assert.Equal(t, StateIdle, st)
}

func TestDeviceCaptureWritesDraft(t *testing.T) {
	m, drafts, _, feed := newTestMachine(stubGeolocator{lat: -1.29212345, lng: 36.82191234})

	require.NoError(t, m.CaptureDeviceLocation(context.Background(), forms.FormOfficer))

	officer := drafts.Officer()
	assert.Equal(t, "-1.292123", officer.Latitude)
	assert.Equal(t, "36.821912", officer.Longitude)

	st, _ := m.State()
	assert.Equal(t, StateIdle, st)

	msgs := feed.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, notify.SeveritySuccess, msgs[0].Severity)
	assert.Contains(t, msgs[0].Message, "Location captured")
}

func TestDeviceCaptureFailureNotifiesAndReturnsToIdle(t *testing.T) {
	m, drafts, _, feed := newTestMachine(stubGeolocator{err: eris.New("position unavailable")})

	err := m.CaptureDeviceLocation(context.Background(), forms.FormMember)
	require.Error(t, err)

	st, _ := m.State()
	assert.Equal(t, StateIdle, st)
	assert.Empty(t, drafts.Member().Latitude)

	msgs := feed.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, notify.SeverityError, msgs[0].Severity)
}

func TestDeviceCaptureWithoutCapability(t *testing.T) {
	m, _, _, feed := newTestMachine(nil)
	err := m.CaptureDeviceLocation(context.Background(), forms.FormOfficer)
	require.Error(t, err)
	require.Len(t, feed.All(), 1)
}

func TestMapCaptureFlow(t *testing.T) {
	m, drafts, panels, _ := newTestMachine(nil)
	panels.Activate(panel.Members)
	panels.OpenModal(panel.ModalOfficer)

	m.BeginMapCapture(forms.FormOfficer)

	// Listening mode closes the modal and forces the map panel.
	assert.Equal(t, panel.ModalNone, panels.ActiveModal())
	assert.Equal(t, panel.Map, panels.Active())

	st, target := m.State()
	assert.Equal(t, StateAwaitingMapClick, st)
	assert.Equal(t, forms.FormOfficer, target)

	consumed := m.HandleMapClick(-1.2945, 36.8267)
	assert.True(t, consumed)

	officer := drafts.Officer()
	assert.Equal(t, "-1.294500", officer.Latitude)
	assert.Equal(t, "36.826700", officer.Longitude)

	// Exactly the officer draft was touched.
	assert.Empty(t, drafts.Member().Latitude)

	st, _ = m.State()
	assert.Equal(t, StateIdle, st)
}

func TestSecondClickWithoutNewRequestIsInert(t *testing.T) {
	m, drafts, _, _ := newTestMachine(nil)
	m.BeginMapCapture(forms.FormOfficer)

	require.True(t, m.HandleMapClick(-1.2945, 36.8267))
	assert.False(t, m.HandleMapClick(-9.9999, 9.9999))

	officer := drafts.Officer()
	assert.Equal(t, "-1.294500", officer.Latitude)
	assert.Empty(t, drafts.Member().Latitude)
}

func TestRetargetingLastRequestWins(t *testing.T) {
	m, drafts, _, _ := newTestMachine(nil)

	m.BeginMapCapture(forms.FormOfficer)
	m.BeginMapCapture(forms.FormMember)

	_, target := m.State()
	assert.Equal(t, forms.FormMember, target)

	require.True(t, m.HandleMapClick(-1.3012, 36.8345))

	// Only the member draft receives the click.
	assert.Empty(t, drafts.Officer().Latitude)
	assert.Equal(t, "-1.301200", drafts.Member().Latitude)
}

func TestClickWhileIdleIgnored(t *testing.T) {
	m, drafts, _, feed := newTestMachine(nil)
	assert.False(t, m.HandleMapClick(-1.2921, 36.8219))
	assert.Empty(t, drafts.Officer().Latitude)
	assert.Empty(t, drafts.Member().Latitude)
	assert.Empty(t, feed.All())
}
