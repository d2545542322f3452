package clients_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies both probes once the seeded service is up.
func TestHealthEndpoints(t *testing.T) {
	client := setupClientsContainer(t)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Version)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
