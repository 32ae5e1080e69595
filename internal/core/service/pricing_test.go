package service

import (
	"testing"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

func TestBerekenPrijsIndicatie(t *testing.T) {
	tests := []struct {
		name          string
		transportType string
		gewicht       string
		afmetingen    string
		spoed         string
		want          string
	}{
		{
			name:          "nationaal standaard klein",
			transportType: domain.TransportNationaal,
			gewicht:       domain.Gewicht0to5,
			afmetingen:    domain.AfmetingenKlein,
			spoed:         domain.SpoedStandaard,
			want:          "€7,95 - €12,95",
		},
		{
			name:          "afmetingen toeslag",
			transportType: domain.TransportNationaal,
			gewicht:       domain.Gewicht0to5,
			afmetingen:    domain.AfmetingenGroot,
			spoed:         domain.SpoedStandaard,
			want:          "€12,95 - €17,95",
		},
		{
			name:          "extra spoed verdubbelt de band",
			transportType: domain.TransportNationaal,
			gewicht:       domain.Gewicht0to5,
			afmetingen:    domain.AfmetingenKlein,
			spoed:         domain.SpoedExtraSpoed,
			want:          "€15,90 - €25,90",
		},
		{
			name:          "internationaal met extra spoed",
			transportType: domain.TransportInternationaal,
			gewicht:       domain.Gewicht0to5,
			afmetingen:    domain.AfmetingenKlein,
			spoed:         domain.SpoedExtraSpoed,
			want:          "€39,75 - €64,75",
		},
		{
			name:          "zwaarste band",
			transportType: domain.TransportNationaal,
			gewicht:       domain.Gewicht50Plus,
			afmetingen:    domain.AfmetingenKlein,
			spoed:         domain.SpoedStandaard,
			want:          "€29,95 - €49,95",
		},
		{
			name:          "onbekend gewicht valt terug op laagste band",
			transportType: domain.TransportNationaal,
			gewicht:       "99-100",
			afmetingen:    domain.AfmetingenKlein,
			spoed:         domain.SpoedStandaard,
			want:          "€7,95 - €12,95",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := berekenPrijsIndicatie(tt.transportType, tt.gewicht, tt.afmetingen, tt.spoed)
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
