package memory

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// Seed fills the memory store with the demo fixtures: an admin account, a
// klant account, and three zendingen owned by the klant. Runs on every
// startup since the store has no durability.
func Seed(ctx context.Context, users *UserRepository, zendingen *ZendingRepository, log zerolog.Logger) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	klantHash, err := bcrypt.GenerateFromPassword([]byte("welkom123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seedUsers := []*domain.User{
		{
			Username:     "admin",
			Email:        "admin@priorityparcel.nl",
			PasswordHash: string(adminHash),
			Role:         domain.RoleAdmin,
			FirstName:    "Beheer",
			LastName:     "PriorityParcel",
			IsActive:     true,
		},
		{
			Username:     "huso",
			Email:        "huso@example.nl",
			PasswordHash: string(klantHash),
			Role:         domain.RoleKlant,
			FirstName:    "Huso",
			LastName:     "Demir",
			Bedrijf:      "Demir Trading B.V.",
			Telefoon:     "+31 6 12345678",
			Adres:        "Kantoorlaan 8",
			Postcode:     "1234 AB",
			Plaats:       "Amsterdam",
			IsActive:     true,
		},
	}

	var klantID int
	for _, u := range seedUsers {
		created, err := users.Create(ctx, u)
		if err != nil {
			return err
		}
		if created.Role == domain.RoleKlant {
			klantID = created.ID
		}
	}

	seedZendingen := []*domain.Zending{
		{
			UserID:               klantID,
			TrackingCode:         "PNL12345678",
			Status:               domain.StatusOnderweg,
			Prioriteit:           domain.SpoedStandaard,
			Verzender:            "Kantoor Supplies B.V.",
			Ontvanger:            "Tech Solutions N.V.",
			Ophaladres:           "Industrieweg 45, 1234 AB Amsterdam",
			Afleveradres:         "Businesspark 12, 5678 CD Rotterdam",
			Prijs:                "€45,95",
			Betaald:              true,
			VerzendDatum:         time.Date(2025, 5, 10, 10, 30, 0, 0, time.UTC),
			GeplandeAfleverDatum: time.Date(2025, 5, 13, 12, 0, 0, 0, time.UTC),
			LaatsteUpdate: domain.LaatsteUpdate{
				Status:   domain.StatusOnderweg,
				Locatie:  "Distributiecentrum Utrecht",
				Tijdstip: time.Date(2025, 5, 11, 14, 45, 0, 0, time.UTC),
			},
		},
		{
			UserID:               klantID,
			TrackingCode:         "PNL23456789",
			Status:               domain.StatusGepland,
			Prioriteit:           domain.SpoedSpoed,
			Verzender:            "Fashion Store B.V.",
			Ontvanger:            "Boutique Elegance",
			Ophaladres:           "Modestraat 78, 2345 EF Den Haag",
			Afleveradres:         "Winkelplein 34, 6789 GH Groningen",
			Prijs:                "€75,50",
			Betaald:              false,
			VerzendDatum:         time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC),
			GeplandeAfleverDatum: time.Date(2025, 5, 12, 17, 0, 0, 0, time.UTC),
			LaatsteUpdate: domain.LaatsteUpdate{
				Status:   domain.StatusGepland,
				Locatie:  "Wachtend op ophaling",
				Tijdstip: time.Date(2025, 5, 11, 15, 30, 0, 0, time.UTC),
			},
		},
		{
			UserID:                 klantID,
			TrackingCode:           "PNL34567890",
			Status:                 domain.StatusAfgeleverd,
			Prioriteit:             domain.SpoedStandaard,
			Verzender:              "Electronics Plus",
			Ontvanger:              "IT Solutions",
			Ophaladres:             "Techstraat 12, 3456 JK Eindhoven",
			Afleveradres:           "Computerweg 45, 7890 LM Utrecht",
			Prijs:                  "€32,75",
			Betaald:                true,
			VerzendDatum:           time.Date(2025, 5, 9, 11, 15, 0, 0, time.UTC),
			GeplandeAfleverDatum:   time.Date(2025, 5, 11, 13, 0, 0, 0, time.UTC),
			WerkelijkeAfleverDatum: timePtr(time.Date(2025, 5, 11, 12, 45, 0, 0, time.UTC)),
			LaatsteUpdate: domain.LaatsteUpdate{
				Status:   domain.StatusAfgeleverd,
				Locatie:  "Computerweg 45, Utrecht",
				Tijdstip: time.Date(2025, 5, 11, 12, 45, 0, 0, time.UTC),
			},
		},
	}

	for _, z := range seedZendingen {
		if _, err := zendingen.Create(ctx, z); err != nil {
			return err
		}
	}

	log.Info().
		Int("users", len(seedUsers)).
		Int("zendingen", len(seedZendingen)).
		Msg("memory store seeded")
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }
