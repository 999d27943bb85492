package models

import "time"

// Role represents the capability of an account
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleRecruiter
}

// User is an account document stored in BadgerDB (keyed by ID)
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" badgerhold:"unique"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Actor identifies the authenticated caller of a service operation.
// A nil *Actor means the request is anonymous. Services take the actor as an
// explicit argument; there is no ambient request-scoped identity.
type Actor struct {
	ID   string
	Role Role
}

// IsRecruiter reports whether the actor is authenticated with the recruiter role
func (a *Actor) IsRecruiter() bool {
	return a != nil && a.Role == RoleRecruiter
}
