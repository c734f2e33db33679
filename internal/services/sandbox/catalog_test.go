package sandbox

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedict-erwin/agency-console/config"
	busbookings "github.com/benedict-erwin/agency-console/internal/entities/bus_bookings"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

var fixedNow = time.Date(2024, time.May, 31, 12, 0, 0, 0, time.UTC)

func testConfig() config.SandboxConfig {
	cfg := config.Default().Sandbox
	cfg.Records = 40
	return cfg
}

func TestGenerateIsDeterministic(t *testing.T) {
	c := busbookings.GetScreenConfig()

	first := Generate(c, 42, 1, 20, fixedNow)
	second := Generate(c, 42, 1, 20, fixedNow)
	other := Generate(c, 43, 1, 20, fixedNow)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Equal(t, "BUS-000001", first[0].BookingID)
	for _, b := range first {
		assert.LessOrEqual(t, b.BookedAt, "2024-05-31")
		assert.NotEqual(t, b.FromCity, b.ToCity)
	}
}

func TestInitServesEveryRoute(t *testing.T) {
	require.NoError(t, Init(testConfig(), fixedNow))

	for _, route := range Routes() {
		out, err := List(route.Name, Query{})
		require.NoError(t, err, route.Name)
		assert.NotNil(t, out)

		statuses, err := Statuses(route.Name)
		require.NoError(t, err, route.Name)
		assert.NotEmpty(t, statuses)
	}

	out, err := List("bus", Query{PerPage: 10})
	require.NoError(t, err)
	page, ok := out.(*pager.Page[busbookings.BusBooking])
	require.True(t, ok)
	assert.Equal(t, 40, page.Total)
	assert.Equal(t, 4, page.LastPage)

	_, err = List("trains", Query{})
	assert.ErrorIs(t, err, ErrUnknownScreen)
}

func TestInitLoadsFixturesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	content := `{"bus": [
		{"id": 1, "booking_id": "BUS-900001", "pnr": "ZZ9PLZ", "agent_sl": "AG-1", "agent_name": "Test Agent",
		 "status": "CONFIRMED", "booked_at": "2024-04-01"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := testConfig()
	cfg.FixturesPath = path
	require.NoError(t, Init(cfg, fixedNow))

	out, err := List("bus", Query{Reference: "zz9"})
	require.NoError(t, err)
	page := out.(*pager.Page[busbookings.BusBooking])
	require.Len(t, page.Data, 1)
	assert.Equal(t, "BUS-900001", page.Data[0].BookingID)

	out, err = List("hotels", Query{})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestInitRejectsBrokenFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bus": {"not": "a list"}}`), 0o600))

	cfg := testConfig()
	cfg.FixturesPath = path
	assert.Error(t, Init(cfg, fixedNow))

	cfg.FixturesPath = filepath.Join(t.TempDir(), "missing.json")
	assert.Error(t, Init(cfg, fixedNow))
}
