package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/visionpay/fieldops/pkg/walker"
)

func sampleData() ([]walker.Officer, []walker.Member) {
	officers := []walker.Officer{
		{ID: 1, Name: "John Kamau", Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}, MembersAssigned: 45, CollectionsToday: 12},
		{ID: 2, Name: "Mary Njeri", Location: walker.LatLng{Lat: -1.3012, Lng: 36.8345}, MembersAssigned: 38, CollectionsToday: 15},
	}
	members := []walker.Member{
		{ID: 1, Name: "Grace Wanjiku", Location: walker.LatLng{Lat: -1.2921, Lng: 36.8219}, Amount: 500, PaymentStatus: walker.PaymentPaid, OfficerID: 1},
		{ID: 2, Name: "David Mwangi", Location: walker.LatLng{Lat: -1.2945, Lng: 36.8267}, Amount: 750, PaymentStatus: walker.PaymentPending, OfficerID: 1},
	}
	return officers, members
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.xlsx")
	officers, members := sampleData()

	require.NoError(t, WriteXLSX(path, officers, members))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 2)

	officerSheet := f.Sheets[0]
	assert.Equal(t, "Officers", officerSheet.Name)
	require.Len(t, officerSheet.Rows, 3) // header + 2
	assert.Equal(t, "John Kamau", officerSheet.Rows[1].Cells[1].String())

	memberSheet := f.Sheets[1]
	assert.Equal(t, "Members", memberSheet.Name)
	require.Len(t, memberSheet.Rows, 3)
	assert.Equal(t, "David Mwangi", memberSheet.Rows[2].Cells[1].String())
	assert.Equal(t, "pending", memberSheet.Rows[2].Cells[5].String())
}

func TestWriteXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, WriteXLSX(path, nil, nil))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 2)
	assert.Len(t, f.Sheets[0].Rows, 1) // header only
}

func TestWriteShapefiles(t *testing.T) {
	dir := t.TempDir()
	officers, members := sampleData()

	require.NoError(t, WriteShapefiles(dir, officers, members))

	for _, name := range []string{"officers.shp", "members.shp"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	reader, err := shp.Open(filepath.Join(dir, "members.shp"))
	require.NoError(t, err)
	defer reader.Close()

	var points []shp.Point
	var names []string
	for reader.Next() {
		_, shape := reader.Shape()
		point, ok := shape.(*shp.Point)
		require.True(t, ok)
		points = append(points, *point)
		names = append(names, strings.TrimRight(reader.Attribute(1), "\x00"))
	}
	require.Len(t, points, 2)
	// X is longitude, Y latitude.
	assert.InDelta(t, 36.8219, points[0].X, 0.0001)
	assert.InDelta(t, -1.2921, points[0].Y, 0.0001)
	assert.Equal(t, "Grace Wanjiku", names[0])
}
