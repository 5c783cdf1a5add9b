package domain

import "time"

// Role classifies an account as the party that posts work or the party
// that bids on it. It is chosen freely by the registrant and immutable
// afterwards.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

// Account models a registered identity. PasswordHash never leaves the server.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserType     Role      `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
}
