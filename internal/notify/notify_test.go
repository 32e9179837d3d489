package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFillsFields(t *testing.T) {
	n := New(SeveritySuccess, "Assigned %d members within %dkm", 3, 50)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, SeveritySuccess, n.Severity)
	assert.Equal(t, "Assigned 3 members within 50km", n.Message)
	assert.False(t, n.At.IsZero())

	// IDs are unique per notification.
	assert.NotEqual(t, n.ID, New(SeverityInfo, "x").ID)
}

func TestFeedRetainsInOrder(t *testing.T) {
	f := NewFeed(0)
	Info(f, "first")
	Success(f, "second")
	Error(f, "third")

	all := f.All()
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, SeverityError, all[2].Severity)
}

func TestFeedLimitDropsOldest(t *testing.T) {
	f := NewFeed(2)
	Info(f, "one")
	Info(f, "two")
	Info(f, "three")

	all := f.All()
	require.Len(t, all, 2)
	assert.Equal(t, "two", all[0].Message)
	assert.Equal(t, "three", all[1].Message)
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewFeed(0), NewFeed(0)
	m := Multi{a, b}

	Error(m, "boom")

	require.Len(t, a.All(), 1)
	require.Len(t, b.All(), 1)
	assert.Equal(t, a.All()[0].ID, b.All()[0].ID)
}
