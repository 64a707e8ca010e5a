package models

import "strings"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleVolunteer   Role = "volunteer"
	RoleParticipant Role = "participant"
)

// Identity is what the organization identity provider vouches for.
type Identity struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber"`
}

// User is the authenticated caller as held in the session store.
type User struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	Role       Role   `json:"role"`
}

// NormalizeEmail yields the canonical identity key used for team membership.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
