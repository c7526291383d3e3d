package service

import (
	"fmt"

	"github.com/worldwidesim/esim-store/internal/catalog"
	"github.com/worldwidesim/esim-store/internal/dto"
	"github.com/worldwidesim/esim-store/internal/model"
)

// DayOptions is the fixed day-count choice set for daily packages.
var DayOptions = []int{1, 3, 5, 7, 10, 15, 30}

func regionMenuView() dto.View {
	rows := make([][]dto.Button, 0, len(catalog.RegionOrder)+1)
	for _, key := range catalog.RegionOrder {
		region := catalog.Regions[key]
		rows = append(rows, []dto.Button{{Text: region.Name, Data: dto.RegionCallback(key)}})
	}
	rows = append(rows, backToMainRow())
	return dto.View{Text: textSelectRegion, Keyboard: rows}
}

func countriesView(region model.Region, page int) dto.View {
	start, end, page := dto.PageBounds(len(region.Countries), page)

	rows := make([][]dto.Button, 0, end-start+2)
	for _, name := range region.Countries[start:end] {
		rows = append(rows, []dto.Button{{Text: name, Data: dto.CountryCallback(name)}})
	}

	if nav := dto.NavRow(page, dto.TotalPages(len(region.Countries)), func(p int) string {
		return dto.CountryPageCallback(region.Key, p)
	}); nav != nil {
		rows = append(rows, nav)
	}

	rows = append(rows, catalogRow())
	return dto.View{Text: textSelectCountry, Keyboard: rows}
}

// packagesView renders one page of the offer list. Offers arrive sorted
// daily-first; a separator row splits the two partitions when both fall
// on the same page.
func packagesView(offers []model.Offer, country model.Country, page int, rate float64) dto.View {
	start, end, page := dto.PageBounds(len(offers), page)

	rows := make([][]dto.Button, 0, end-start+3)
	for i, offer := range offers[start:end] {
		if i > 0 && !IsDaily(offer) && IsDaily(offers[start+i-1]) {
			rows = append(rows, []dto.Button{{Text: "──────────────────", Data: dto.CallbackSeparator}})
		}
		rows = append(rows, []dto.Button{{
			Text: packageButtonText(offer, country.Name, rate),
			Data: dto.PackageCallback(start + i),
		}})
	}

	if nav := dto.NavRow(page, dto.TotalPages(len(offers)), func(p int) string {
		return dto.PackagePageCallback(country.Code, p)
	}); nav != nil {
		rows = append(rows, nav)
	}

	rows = append(rows, catalogRow())
	return dto.View{Text: fmt.Sprintf(textChoosePackage, country.Name), Keyboard: rows}
}

func packageButtonText(offer model.Offer, countryName string, rate float64) string {
	volume := FormatVolume(offer.Volume)
	price := LocalPrice(BaseUSD(offer), rate)

	if IsDaily(offer) {
		return fmt.Sprintf("%s %s/День — от %d₽", countryName, volume, price)
	}
	return fmt.Sprintf("%s %s, %s — %d₽",
		countryName, volume, FormatDuration(offer.Duration, offer.DurationUnit), price)
}

func daysView(countryName string, packageIndex int) dto.View {
	rows := make([][]dto.Button, 0, len(DayOptions)/2+2)
	for i := 0; i < len(DayOptions); i += 2 {
		row := []dto.Button{dayButton(packageIndex, DayOptions[i])}
		if i+1 < len(DayOptions) {
			row = append(row, dayButton(packageIndex, DayOptions[i+1]))
		}
		rows = append(rows, row)
	}
	rows = append(rows, []dto.Button{{Text: "↩️ Назад к тарифам", Data: dto.CallbackBackToList}})
	return dto.View{Text: fmt.Sprintf(textSelectDays, countryName), Keyboard: rows}
}

func dayButton(packageIndex, days int) dto.Button {
	label := fmt.Sprintf("%d дней", days)
	if days == 1 {
		label = "1 день"
	}
	return dto.Button{Text: label, Data: dto.DaysCallback(packageIndex, days)}
}

func confirmView(country model.Country, quote Quote, operators string) dto.View {
	if operators == "" {
		operators = textDefaultOperators
	}
	return dto.View{
		Text: fmt.Sprintf(textConfirmPurchase, country.Name, quote.Label, operators, quote.LocalPrice, quote.USDPrice),
		Keyboard: [][]dto.Button{
			{{Text: "💳 Оплатить по СБП", Data: dto.CallbackPaySBP}},
			{{Text: "↩️ В каталог", Data: dto.BackToListCallback(country.Code)}},
		},
	}
}

func paymentDoneView() dto.View {
	return dto.View{
		Text: textPaymentSuccess,
		Keyboard: [][]dto.Button{
			{{Text: "📱 Показать детали eSIM", Data: dto.CallbackShowDetails}},
		},
	}
}

func detailsView(profile model.Profile) dto.View {
	return mainMenuTextView(fmt.Sprintf(textEsimDetails,
		profile.ICCID, profile.ActivationCode, profile.QRCodeURL))
}

// mainMenuTextView is a plain text screen with the back-to-main control.
func mainMenuTextView(text string) dto.View {
	return dto.View{Text: text, Keyboard: [][]dto.Button{backToMainRow()}}
}

// LoadingPackagesView is the interim screen shown while a country's
// offers are fetched.
func LoadingPackagesView(countryName string) dto.View {
	return dto.View{Text: fmt.Sprintf(textLoadingPackages, countryName)}
}

// ProcessingPaymentView is the interim screen shown while the order is
// being placed.
func ProcessingPaymentView() dto.View {
	return dto.View{Text: textProcessingPayment}
}

// GettingDetailsView is the interim screen shown while provisioning is
// polled.
func GettingDetailsView() dto.View {
	return dto.View{Text: textGettingDetails}
}

func backToMainRow() []dto.Button {
	return []dto.Button{{Text: "↩️ В каталог", Data: dto.CallbackMainMenu}}
}

func catalogRow() []dto.Button {
	return []dto.Button{{Text: "↩️ В каталог", Data: dto.CallbackBuy}}
}
