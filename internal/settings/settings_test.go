package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, DefaultRadiusKM, s.RadiusKM())
	assert.Equal(t, PaydayWeekly, s.Frequency())
}

func TestSetRadiusKM(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "in_range", in: 25, want: 25},
		{name: "below_min", in: 3, want: 10},
		{name: "above_max", in: 500, want: 100},
		{name: "snaps_down", in: 27, want: 25},
		{name: "snaps_up", in: 28, want: 30},
		{name: "max_exact", in: 100, want: 100},
		{name: "near_max_snaps_within_bounds", in: 99, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetRadiusKM(tt.in)
			assert.Equal(t, tt.want, s.RadiusKM())
		})
	}
}

func TestSetFrequency(t *testing.T) {
	s := New()
	s.SetFrequency(PaydayMonthly)
	assert.Equal(t, PaydayMonthly, s.Frequency())

	// Unknown values are ignored.
	s.SetFrequency("fortnightly")
	assert.Equal(t, PaydayMonthly, s.Frequency())
}
