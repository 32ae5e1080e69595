package domain

import "time"

// Transport types accepted on a quote request.
const (
	TransportNationaal      = "nationaal"
	TransportInternationaal = "internationaal"
)

// Weight bands (kilograms).
const (
	Gewicht0to5   = "0-5"
	Gewicht5to10  = "5-10"
	Gewicht10to20 = "10-20"
	Gewicht20to50 = "20-50"
	Gewicht50Plus = "50+"
)

// Dimension bands.
const (
	AfmetingenKlein      = "klein"
	AfmetingenMiddel     = "middel"
	AfmetingenGroot      = "groot"
	AfmetingenExtraGroot = "extra-groot"
)

// Urgency bands.
const (
	SpoedStandaard  = "standaard"
	SpoedSpoed      = "spoed"
	SpoedExtraSpoed = "extra-spoed"
)

// PrijsOfferte is a submitted price-quote request. The price indication is
// computed at creation time and stored as a formatted band string.
type PrijsOfferte struct {
	ID             int       `json:"id"`
	TransportType  string    `json:"transportType"`
	Gewicht        string    `json:"gewicht"`
	Afmetingen     string    `json:"afmetingen"`
	Spoed          string    `json:"spoed"`
	Naam           string    `json:"naam"`
	Bedrijf        string    `json:"bedrijf,omitempty"`
	Email          string    `json:"email"`
	Telefoon       string    `json:"telefoon"`
	Ophaladres     string    `json:"ophaladres"`
	Afleveradres   string    `json:"afleveradres"`
	Bericht        string    `json:"bericht,omitempty"`
	PrijsIndicatie string    `json:"prijsIndicatie"`
	IPAddress      string    `json:"ipAddress,omitempty"`
	IsVerwerkt     bool      `json:"isVerwerkt"`
	CreatedAt      time.Time `json:"createdAt"`
}
