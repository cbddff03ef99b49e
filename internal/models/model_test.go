package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOfferStatus(t *testing.T) {
	for _, s := range AllOfferStatuses {
		parsed, err := ParseOfferStatus(string(s))
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	_, err := ParseOfferStatus("negotiating")
	require.Error(t, err)

	_, err = ParseOfferStatus("")
	require.Error(t, err)
}

// Every valid status must have a real label; the fallback is only for
// values that bypassed parsing.
func TestOfferStatus_Label(t *testing.T) {
	for _, s := range AllOfferStatuses {
		require.NotEqual(t, "unknown", s.Label(), "status %q has no label", s)
	}
	require.Equal(t, "unknown", OfferStatus("negotiating").Label())
}

func TestOfferStatus_Live(t *testing.T) {
	require.True(t, StatusPending.Live())
	require.True(t, StatusCountered.Live())

	for _, s := range []OfferStatus{StatusAccepted, StatusRejected, StatusExpired, StatusWithdrawn, StatusCancelled} {
		require.False(t, s.Live(), "status %q should be terminal", s)
	}
}
