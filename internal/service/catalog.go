package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/worldwidesim/esim-store/internal/model"
)

// ProvisioningClient is the surface of the external eSIM vendor the
// purchase flow consumes.
type ProvisioningClient interface {
	ListPackages(ctx context.Context, countryCode string) ([]model.Offer, error)
	OrderProfile(ctx context.Context, packageCode string, price int64, count, periodNum int) (string, error)
	QueryOrder(ctx context.Context, orderNo string) ([]model.Profile, error)
}

// regionalKeywords mark offers that cover multiple countries; those are
// excluded from country-specific listings.
var regionalKeywords = []string{
	"Global", "Asia", "Europe", "Africa", "Americas", "CIS", "Middle East",
	"Multi", "Regional", "World", "International", "Continental",
	"areas", "countries", "regions",
}

// CatalogService turns raw vendor offers into the filtered, deduplicated,
// sorted list the purchase flow presents.
type CatalogService struct {
	client ProvisioningClient
}

func NewCatalogService(client ProvisioningClient) *CatalogService {
	return &CatalogService{client: client}
}

// ListOffers fetches, filters, dedupes and sorts the offers for a country.
// An upstream failure degrades to an empty list; it never propagates.
func (s *CatalogService) ListOffers(ctx context.Context, countryCode string) []model.Offer {
	raw, err := s.client.ListPackages(ctx, countryCode)
	if err != nil {
		log.Error().Err(err).Str("country_code", countryCode).Msg("package listing failed")
		return nil
	}

	offers := make([]model.Offer, 0, len(raw))
	for _, offer := range raw {
		if IsRegional(offer.Name, countryCode) {
			continue
		}
		offers = append(offers, offer)
	}

	offers = Dedupe(offers)
	SortOffers(offers)
	return offers
}

// IsDaily reports whether an offer bills and resets per day: either the
// vendor's daily-reset data type, or a short DAY-denominated term.
func IsDaily(offer model.Offer) bool {
	if offer.DataType == model.DataTypeDailyReset {
		return true
	}
	return strings.ToUpper(offer.DurationUnit) == model.UnitDay && offer.Duration <= 7
}

// IsRegional reports whether an offer name marks a multi-country package.
// A keyword match excludes the offer outright; the country-code check is
// only reached when no keyword matched, where it cannot change the
// outcome. Kept as shipped.
func IsRegional(offerName, countryCode string) bool {
	name := strings.ToLower(offerName)
	for _, keyword := range regionalKeywords {
		if strings.Contains(name, strings.ToLower(keyword)) {
			return true
		}
	}
	if strings.Contains(name, strings.ToLower(countryCode)) {
		return false
	}
	return false
}

// Dedupe keeps the cheapest offer per (volume, duration, unit, data type)
// key, preserving first-seen order of the keys.
func Dedupe(offers []model.Offer) []model.Offer {
	type key struct {
		volume   int64
		duration int
		unit     string
		dataType int
	}

	cheapest := make(map[key]int, len(offers))
	order := make([]key, 0, len(offers))

	for i, offer := range offers {
		k := key{offer.Volume, offer.Duration, offer.DurationUnit, offer.DataType}
		if at, seen := cheapest[k]; !seen {
			cheapest[k] = i
			order = append(order, k)
		} else if offer.Price < offers[at].Price {
			cheapest[k] = i
		}
	}

	result := make([]model.Offer, 0, len(order))
	for _, k := range order {
		result = append(result, offers[cheapest[k]])
	}
	return result
}

// SortOffers orders for display: daily packages first, then ascending
// duration, volume and price.
func SortOffers(offers []model.Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		di, dj := IsDaily(offers[i]), IsDaily(offers[j])
		if di != dj {
			return di
		}
		if offers[i].Duration != offers[j].Duration {
			return offers[i].Duration < offers[j].Duration
		}
		if offers[i].Volume != offers[j].Volume {
			return offers[i].Volume < offers[j].Volume
		}
		return offers[i].Price < offers[j].Price
	})
}
