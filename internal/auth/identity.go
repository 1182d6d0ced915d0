package auth

// Identity is the snapshot of a user attached to a session at login.
// It contains facts only, no decisions.
type Identity struct {
	Email string
	Name  string
	Role  string
}
