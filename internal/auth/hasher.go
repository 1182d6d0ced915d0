package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor (10 rounds).
const hashCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password using bcrypt. The salt is
// generated per call and embedded in the digest.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored digest.
// A malformed digest is treated as a mismatch, never as a failure.
func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
