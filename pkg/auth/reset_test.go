package auth

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewResetToken_Entropy(t *testing.T) {
	token, _, err := NewResetToken()
	require.NoError(t, err)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	require.Len(t, raw, 32) // 256 bits of randomness

	other, _, err := NewResetToken()
	require.NoError(t, err)
	require.NotEqual(t, token, other)
}

func TestNewResetToken_Expiry(t *testing.T) {
	before := time.Now().UTC()
	_, expiry, err := NewResetToken()
	require.NoError(t, err)
	after := time.Now().UTC()

	require.False(t, expiry.Before(before.Add(ResetTokenTTL)))
	require.False(t, expiry.After(after.Add(ResetTokenTTL)))
}
