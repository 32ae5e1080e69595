package domain

import "time"

// ZendingStatus represents the lifecycle state of a zending.
type ZendingStatus string

const (
	StatusGepland     ZendingStatus = "gepland"
	StatusOpgehaald   ZendingStatus = "opgehaald"
	StatusOnderweg    ZendingStatus = "onderweg"
	StatusAfgeleverd  ZendingStatus = "afgeleverd"
	StatusVertraagd   ZendingStatus = "vertraagd"
	StatusGeannuleerd ZendingStatus = "geannuleerd"
)

// validTransitions defines the allowed state machine transitions.
// afgeleverd and geannuleerd are terminal.
var validTransitions = map[ZendingStatus][]ZendingStatus{
	StatusGepland:   {StatusOpgehaald, StatusGeannuleerd},
	StatusOpgehaald: {StatusOnderweg, StatusGeannuleerd},
	StatusOnderweg:  {StatusAfgeleverd, StatusVertraagd},
	StatusVertraagd: {StatusOnderweg, StatusAfgeleverd, StatusGeannuleerd},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ZendingStatus) CanTransitionTo(next ZendingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive reports whether the zending still requires handling.
func (s ZendingStatus) IsActive() bool {
	return s != StatusAfgeleverd && s != StatusGeannuleerd
}

// LaatsteUpdate is the nested "last update" sub-record on a zending.
type LaatsteUpdate struct {
	Status   ZendingStatus `json:"status" bson:"status"`
	Locatie  string        `json:"locatie" bson:"locatie"`
	Tijdstip time.Time     `json:"tijdstip" bson:"tijdstip"`
}

// Zending is the shipment aggregate tracked from pickup to delivery.
type Zending struct {
	ID                     int           `json:"id" bson:"_id"`
	UserID                 int           `json:"userId" bson:"user_id"`
	TrackingCode           string        `json:"trackingCode" bson:"tracking_code"`
	Status                 ZendingStatus `json:"status" bson:"status"`
	Prioriteit             string        `json:"prioriteit" bson:"prioriteit"`
	Verzender              string        `json:"verzender" bson:"verzender"`
	Ontvanger              string        `json:"ontvanger" bson:"ontvanger"`
	Ophaladres             string        `json:"ophaladres" bson:"ophaladres"`
	Afleveradres           string        `json:"afleveradres" bson:"afleveradres"`
	Prijs                  string        `json:"prijs" bson:"prijs"`
	Betaald                bool          `json:"betaald" bson:"betaald"`
	VerzendDatum           time.Time     `json:"verzendDatum" bson:"verzend_datum"`
	GeplandeAfleverDatum   time.Time     `json:"geplandeAfleverDatum" bson:"geplande_aflever_datum"`
	WerkelijkeAfleverDatum *time.Time    `json:"werkelijkeAfleverDatum,omitempty" bson:"werkelijke_aflever_datum,omitempty"`
	LaatsteUpdate          LaatsteUpdate `json:"lastUpdate" bson:"laatste_update"`
}

// ZendingUpdate is an audit entry recording one status change on a zending.
type ZendingUpdate struct {
	ID           int           `json:"id" bson:"_id"`
	ZendingID    int           `json:"zendingId" bson:"zending_id"`
	TrackingCode string        `json:"trackingCode" bson:"tracking_code"`
	Status       ZendingStatus `json:"status" bson:"status"`
	Locatie      string        `json:"locatie" bson:"locatie"`
	Opmerking    string        `json:"opmerking,omitempty" bson:"opmerking,omitempty"`
	DoorUserID   int           `json:"doorUserId" bson:"door_user_id"`
	Tijdstip     time.Time     `json:"tijdstip" bson:"tijdstip"`
}
