package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedict-erwin/agency-console/config"
)

func registerClients(t *testing.T) {
	t.Helper()
	require.NoError(t, InitAuth(config.AuthConfig{
		Enabled:   true,
		Algorithm: "HS256",
		Clients: []config.ClientConfig{
			{ClientID: "ops", ClientName: "Ops desk", SecretKey: "ops-secret", Permissions: []string{"read:*"}, Active: true},
			{ClientID: "old", ClientName: "Retired", SecretKey: "old-secret", Active: false},
		},
	}))
	t.Cleanup(func() { _ = InitAuth(config.AuthConfig{}) })
}

func TestIssueAndVerifyToken(t *testing.T) {
	registerClients(t)

	token, err := IssueToken("ops", "ops-secret", time.Minute, time.Now())
	require.NoError(t, err)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.ClientID)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	registerClients(t)

	wrongSecret, err := IssueToken("ops", "not-the-secret", time.Minute, time.Now())
	require.NoError(t, err)
	expired, err := IssueToken("ops", "ops-secret", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	inactive, err := IssueToken("old", "old-secret", time.Minute, time.Now())
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret":    wrongSecret,
		"expired":         expired,
		"inactive client": inactive,
		"garbage":         "not.a.token",
	} {
		_, err := VerifyJWT(token)
		assert.Error(t, err, name)
	}
}

func TestInitAuthRejectsUnknownAlgorithm(t *testing.T) {
	err := InitAuth(config.AuthConfig{Algorithm: "ROT13"})
	assert.Error(t, err)
}

func TestTokenSourceCachesUntilNearExpiry(t *testing.T) {
	source := NewTokenSource("ops", "ops-secret", 5*time.Minute)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	source.now = func() time.Time { return now }

	first, err := source.Token()
	require.NoError(t, err)

	now = now.Add(time.Minute)
	second, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	now = now.Add(4*time.Minute - 10*time.Second)
	third, err := source.Token()
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestHasPermission(t *testing.T) {
	cases := []struct {
		granted  []string
		required string
		want     bool
	}{
		{[]string{"read:bookings"}, "read:bookings", true},
		{[]string{"read:*"}, "read:tickets", true},
		{[]string{"*:tickets"}, "read:tickets", true},
		{[]string{"admin:bookings"}, "read:bookings", true},
		{[]string{"*:*"}, "read:statuses", true},
		{[]string{"read:tickets"}, "read:bookings", false},
		{[]string{"admin:tickets"}, "read:bookings", false},
		{[]string{"malformed"}, "read:bookings", false},
		{nil, "read:bookings", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HasPermission(tc.granted, tc.required), "%v vs %s", tc.granted, tc.required)
	}
	assert.Equal(t, "read:bookings", Permission(ActionRead, ResourceBookings))
}
