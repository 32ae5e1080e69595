package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleKlant      = "klant"
	RoleMedewerker = "medewerker"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleKlant || role == RoleMedewerker
}

// User models an account in the portal. Ids are positive integers assigned
// by the repository in insertion order and never reused.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	FirstName    string     `json:"firstName,omitempty"`
	LastName     string     `json:"lastName,omitempty"`
	Bedrijf      string     `json:"bedrijf,omitempty"`
	Telefoon     string     `json:"telefoon,omitempty"`
	Adres        string     `json:"adres,omitempty"`
	Postcode     string     `json:"postcode,omitempty"`
	Plaats       string     `json:"plaats,omitempty"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
