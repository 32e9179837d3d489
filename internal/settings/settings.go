// Package settings holds the process-wide operator settings. Nothing here
// is persisted across sessions.
package settings

import "sync"

// Radius bounds and step as the settings slider exposes them.
const (
	MinRadiusKM  = 10
	MaxRadiusKM  = 100
	RadiusStepKM = 5

	DefaultRadiusKM = 50
)

// PaydayFrequency is the shared payment schedule for a zone. It is
// captured for display only and transmitted to no endpoint.
type PaydayFrequency string

// Supported payday frequencies.
const (
	PaydayWeekly   PaydayFrequency = "weekly"
	PaydayBiweekly PaydayFrequency = "biweekly"
	PaydayMonthly  PaydayFrequency = "monthly"
)

// Settings is the session's operator configuration.
type Settings struct {
	mu        sync.Mutex
	radiusKM  int
	frequency PaydayFrequency
}

// New creates settings with the UI defaults.
func New() *Settings {
	return &Settings{radiusKM: DefaultRadiusKM, frequency: PaydayWeekly}
}

// RadiusKM returns the assignment radius.
func (s *Settings) RadiusKM() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.radiusKM
}

// SetRadiusKM clamps the value to [MinRadiusKM, MaxRadiusKM] and snaps it
// to the nearest step, mirroring the slider's constraints.
func (s *Settings) SetRadiusKM(km int) {
	if km < MinRadiusKM {
		km = MinRadiusKM
	}
	if km > MaxRadiusKM {
		km = MaxRadiusKM
	}
	km = ((km + RadiusStepKM/2) / RadiusStepKM) * RadiusStepKM
	if km > MaxRadiusKM {
		km = MaxRadiusKM
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.radiusKM = km
}

// Frequency returns the payday frequency.
func (s *Settings) Frequency() PaydayFrequency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frequency
}

// SetFrequency updates the payday frequency; unknown values are ignored.
func (s *Settings) SetFrequency(f PaydayFrequency) {
	switch f {
	case PaydayWeekly, PaydayBiweekly, PaydayMonthly:
	default:
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.frequency = f
}
