// Package token issues single-use password-reset tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// entropyBytes gives 160 bits of entropy; the hex form is 40 chars.
	entropyBytes = 20

	// TTL is how long a reset token stays redeemable.
	TTL = time.Hour
)

// Token is a password-reset authorization value. It is stored on the user
// record and cleared in the same write that applies the new password.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// New issues a fresh token expiring TTL after now.
func New(now time.Time) (Token, error) {
	b := make([]byte, entropyBytes)
	if _, err := rand.Read(b); err != nil {
		return Token{}, fmt.Errorf("token: failed to generate: %w", err)
	}

	return Token{
		Value:     hex.EncodeToString(b),
		ExpiresAt: now.Add(TTL),
	}, nil
}
