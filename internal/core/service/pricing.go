package service

import (
	"fmt"
	"strings"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// prijsBand is an indicative price range in euros.
type prijsBand struct {
	min float64
	max float64
}

// basisBanden holds the base band per weight class, for a national standard
// shipment of the smallest dimension class.
var basisBanden = map[string]prijsBand{
	domain.Gewicht0to5:   {7.95, 12.95},
	domain.Gewicht5to10:  {9.95, 16.95},
	domain.Gewicht10to20: {13.95, 22.95},
	domain.Gewicht20to50: {19.95, 34.95},
	domain.Gewicht50Plus: {29.95, 49.95},
}

// afmetingenToeslag is a flat surcharge on both bounds per dimension class.
var afmetingenToeslag = map[string]float64{
	domain.AfmetingenKlein:      0,
	domain.AfmetingenMiddel:     2,
	domain.AfmetingenGroot:      5,
	domain.AfmetingenExtraGroot: 10,
}

// spoedFactor scales the band for urgency.
var spoedFactor = map[string]float64{
	domain.SpoedStandaard:  1.0,
	domain.SpoedSpoed:      1.5,
	domain.SpoedExtraSpoed: 2.0,
}

const internationaalFactor = 2.5

// berekenPrijsIndicatie computes the indicative price band for a quote
// request, formatted Dutch-style: "€7,95 - €12,95".
func berekenPrijsIndicatie(transportType, gewicht, afmetingen, spoed string) string {
	band, ok := basisBanden[gewicht]
	if !ok {
		band = basisBanden[domain.Gewicht0to5]
	}

	toeslag := afmetingenToeslag[afmetingen]
	band.min += toeslag
	band.max += toeslag

	factor := spoedFactor[spoed]
	if factor == 0 {
		factor = 1.0
	}
	if transportType == domain.TransportInternationaal {
		factor *= internationaalFactor
	}
	band.min *= factor
	band.max *= factor

	return fmt.Sprintf("%s - %s", formatEuro(band.min), formatEuro(band.max))
}

// formatEuro renders an amount with a comma decimal separator: "€7,95".
func formatEuro(amount float64) string {
	return "€" + strings.Replace(fmt.Sprintf("%.2f", amount), ".", ",", 1)
}
