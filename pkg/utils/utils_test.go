package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTimezone(t *testing.T) {
	t.Cleanup(func() { appLocation = time.UTC })

	require.NoError(t, InitTimezone("Asia/Dhaka"))
	assert.Equal(t, "Asia/Dhaka", GetLocation().String())
	assert.Equal(t, "Asia/Dhaka", Now().Location().String())

	assert.Error(t, InitTimezone("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, GetLocation())

	require.NoError(t, InitTimezone(""))
	assert.Equal(t, time.UTC, GetLocation())
	assert.Len(t, Today(), 10)
}
