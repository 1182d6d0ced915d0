package user

import "time"

const DefaultRole = "user"

// User is a stored account record. ResetToken and ResetTokenExpiry are
// either both set or both zero; they are written together in a single
// update so a half-applied password reset is never observable.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Role             string
	ResetToken       string
	ResetTokenExpiry time.Time
}

// ClearResetToken removes an outstanding reset token. Call before saving
// the record that consumed it.
func (u *User) ClearResetToken() {
	u.ResetToken = ""
	u.ResetTokenExpiry = time.Time{}
}
