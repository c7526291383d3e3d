package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/worldwidesim/esim-store/internal/model"
)

// Pricing policy constants. The formula is a hard external contract:
// local = round(total_usd × rate × 4 × 1.065 / 10) × 10.
var (
	priceScale    = decimal.NewFromInt(10000)
	markupFactor  = decimal.NewFromInt(4)
	markupPercent = decimal.NewFromFloat(1.065)
	roundingStep  = decimal.NewFromInt(10)
)

// Quote is a displayed price for an offer: local currency total, source
// currency total and a human label.
type Quote struct {
	LocalPrice int64
	USDPrice   float64
	Label      string
}

// BaseUSD is the offer's source-currency price; the wire format carries
// four implied decimal digits.
func BaseUSD(offer model.Offer) decimal.Decimal {
	return decimal.NewFromInt(offer.Price).Div(priceScale)
}

// LocalPrice applies the markup formula to a source-currency total and
// rounds to the nearest 10 units of local currency, ties away from zero.
func LocalPrice(totalUSD decimal.Decimal, rate float64) int64 {
	local := totalUSD.
		Mul(decimal.NewFromFloat(rate)).
		Mul(markupFactor).
		Mul(markupPercent).
		Div(roundingStep).
		Round(0).
		Mul(roundingStep)
	return local.IntPart()
}

// PriceOffer computes the displayed quote for an offer. selectedDays > 0
// prices a daily offer for that many days; otherwise the offer's own
// price and term are used.
func PriceOffer(offer model.Offer, rate float64, selectedDays int) Quote {
	base := BaseUSD(offer)
	volume := FormatVolume(offer.Volume)

	if selectedDays > 0 && IsDaily(offer) {
		total := base.Mul(decimal.NewFromInt(int64(selectedDays)))
		usd, _ := total.Float64()
		return Quote{
			LocalPrice: LocalPrice(total, rate),
			USDPrice:   usd,
			Label:      fmt.Sprintf("%s/день на %d дней", volume, selectedDays),
		}
	}

	usd, _ := base.Float64()
	return Quote{
		LocalPrice: LocalPrice(base, rate),
		USDPrice:   usd,
		Label:      fmt.Sprintf("%s, %s", volume, FormatDuration(offer.Duration, offer.DurationUnit)),
	}
}

// FormatVolume renders bytes as whole gigabytes when at least 1 GiB,
// whole megabytes otherwise.
func FormatVolume(bytes int64) string {
	if bytes >= 1<<30 {
		return fmt.Sprintf("%.0fГБ", float64(bytes)/(1<<30))
	}
	return fmt.Sprintf("%.0fМБ", float64(bytes)/(1<<20))
}

// FormatDuration renders an offer term; unknown units pass through raw.
func FormatDuration(duration int, unit string) string {
	switch unit {
	case model.UnitDay:
		return fmt.Sprintf("%d дней", duration)
	case model.UnitMonth:
		return fmt.Sprintf("%d месяцев", duration)
	default:
		return fmt.Sprintf("%d %s", duration, unit)
	}
}
