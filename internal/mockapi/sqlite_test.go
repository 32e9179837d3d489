package mockapi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionpay/fieldops/pkg/walker"
)

func TestPersistentDatasetSeedsEmptyDB(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "mock.db")

	d, err := NewPersistentDataset(dsn)
	require.NoError(t, err)
	defer d.Close()

	assert.Len(t, d.Officers(), 2)
	assert.Len(t, d.Members(), 3)
	assert.Equal(t, 4, d.Stats().TotalMembers)
}

func TestPersistentDatasetSurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "mock.db")

	d, err := NewPersistentDataset(dsn)
	require.NoError(t, err)

	require.NoError(t, d.AddOfficer(walker.AddOfficerRequest{ID: 3, Name: "Peter Otieno", Latitude: -1.28, Longitude: 36.82}))
	require.NoError(t, d.AddMember(walker.AddMemberRequest{
		ID: 4, Name: "Alice Chebet", Latitude: -1.29, Longitude: 36.83,
		Amount: 300, PaymentStatus: walker.PaymentPending,
	}))
	require.NoError(t, d.RecordPayment(walker.PaymentRequest{MemberID: 2, Amount: 750, OfficerID: 1}))
	require.NoError(t, d.Close())

	reopened, err := NewPersistentDataset(dsn)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Len(t, reopened.Officers(), 3)

	members := reopened.Members()
	require.Len(t, members, 4)
	assert.Equal(t, walker.PaymentPaid, members[1].PaymentStatus)
	assert.Equal(t, "Alice Chebet", members[3].Name)

	stats := reopened.Stats()
	assert.Equal(t, 5, stats.TotalMembers)
	assert.Equal(t, 3, stats.PaidToday)
	assert.InDelta(t, 1850, stats.TotalCollected, 0.001)
}

func TestPersistentDatasetStoredRowsWin(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "mock.db")

	d, err := NewPersistentDataset(dsn)
	require.NoError(t, err)
	require.NoError(t, d.AddOfficer(walker.AddOfficerRequest{ID: 9, Name: "Extra", Latitude: 0, Longitude: 0}))
	require.NoError(t, d.Close())

	// Reopening must not re-seed on top of existing rows.
	reopened, err := NewPersistentDataset(dsn)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Len(t, reopened.Officers(), 3)
}
