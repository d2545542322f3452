package clients_test

import (
	"testing"

	"github.com/iftm/clients/pkg/clientsdk"
	"github.com/stretchr/testify/require"
)

// TestWriteRateLimit exhausts a tiny write budget and expects a 429.
func TestWriteRateLimit(t *testing.T) {
	client := setupClientsContainerWithEnv(t, map[string]string{
		"RATELIMIT_MODERATE_REQUESTS":   "1",
		"RATELIMIT_MODERATE_WINDOW_SEC": "3600",
		"RATELIMIT_MODERATE_BURST":      "2",
	})

	var limited error
	for range 5 {
		if err := client.DeleteClient(t.Context(), 1000); clientsdk.IsRateLimited(err) {
			limited = err
			break
		}
	}
	require.Error(t, limited, "expected a write to be rate limited")

	// Reads use a separate, lenient budget.
	_, err := client.GetClient(t.Context(), 7)
	require.NoError(t, err)
}
