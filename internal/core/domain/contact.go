package domain

import "time"

// ContactMessage is a submitted contact-form entry. Immutable after
// creation except for the answered flag, which an admin can set.
type ContactMessage struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Message      string    `json:"message"`
	IPAddress    string    `json:"ipAddress,omitempty"`
	IsBeantwoord bool      `json:"isBeantwoord"`
	CreatedAt    time.Time `json:"createdAt"`
}
