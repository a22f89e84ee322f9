package domain

import "time"

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account is the single identity record shared by authentication and
// user administration.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Hash      string    `json:"-"`
}

// HasCredentials reports whether the account can log in.
func (a Account) HasCredentials() bool { return a.Hash != "" }

func ValidRole(role string) bool { return role == RoleAdmin || role == RoleUser }
