package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ResetTokenTTL is the fixed lifetime of a password-reset token.
const ResetTokenTTL = time.Hour

const resetTokenBytes = 32

// NewResetToken returns a 256-bit crypto-random hex token and its expiry.
// The token is opaque: it encodes nothing about the user, so a leaked token
// is useless outside the reset flow of the account that stores it.
func NewResetToken() (string, time.Time, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	return hex.EncodeToString(buf), time.Now().UTC().Add(ResetTokenTTL), nil
}
