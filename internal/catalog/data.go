// Package catalog holds the static region and country reference data the
// purchase flow is built on. The data is loaded at startup and immutable.
package catalog

import (
	"github.com/worldwidesim/esim-store/internal/model"
)

// RegionOrder fixes the presentation order of the region menu.
var RegionOrder = []string{"asia", "middle_east", "europe", "americas", "cis", "africa"}

// Regions maps a region key to its display name and full country list.
// Country lists are single ordered sequences; pagination is presentation.
var Regions = map[string]model.Region{
	"asia": {
		Key:  "asia",
		Name: "🐼 Азия",
		Countries: []string{
			"Japan", "China", "South Korea", "Thailand", "Vietnam",
			"Indonesia", "Malaysia", "Singapore", "Philippines", "India",
			"Taiwan", "Hong Kong", "Macau", "Cambodia", "Laos",
			"Myanmar", "Bangladesh", "Sri Lanka", "Nepal", "Mongolia",
			"Pakistan", "Maldives", "Brunei",
		},
		Image: "images/asia.png",
	},
	"middle_east": {
		Key:  "middle_east",
		Name: "🐪 Ближний восток",
		Countries: []string{
			"United Arab Emirates", "Turkey", "Israel", "Saudi Arabia",
			"Qatar", "Kuwait", "Bahrain", "Oman", "Jordan", "Iraq",
			"Lebanon", "Iran",
		},
		Image: "images/middle_east.png",
	},
	"europe": {
		Key:  "europe",
		Name: "🐌 Европа",
		Countries: []string{
			"France", "Germany", "Italy", "Spain", "Portugal",
			"Netherlands", "Belgium", "Austria", "Switzerland", "Poland",
			"Czech Republic", "Slovakia", "Hungary", "Romania", "Bulgaria",
			"Greece", "Croatia", "Serbia", "Slovenia", "Montenegro",
			"Albania", "North Macedonia", "Bosnia and Herzegovina", "Sweden", "Norway",
			"Denmark", "Finland", "Iceland", "Ireland", "United Kingdom",
			"Estonia", "Latvia", "Lithuania", "Luxembourg", "Malta",
			"Cyprus",
		},
		Image: "images/europe.png",
	},
	"americas": {
		Key:  "americas",
		Name: "🦅 Америка",
		Countries: []string{
			"United States", "Canada", "Mexico", "Brazil", "Argentina",
			"Chile", "Colombia", "Peru", "Ecuador", "Uruguay",
			"Paraguay", "Bolivia", "Costa Rica", "Panama", "Cuba",
			"Dominican Republic", "Jamaica", "Guatemala",
		},
		Image: "images/americas.png",
	},
	"cis": {
		Key:  "cis",
		Name: "🐻 СНГ",
		Countries: []string{
			"Kazakhstan", "Uzbekistan", "Kyrgyzstan", "Tajikistan", "Armenia",
			"Azerbaijan", "Georgia", "Belarus", "Moldova",
		},
		Image: "images/cis.png",
	},
	"africa": {
		Key:  "africa",
		Name: "🦁 Африка",
		Countries: []string{
			"Egypt", "Morocco", "Tunisia", "Algeria", "South Africa",
			"Kenya", "Tanzania", "Nigeria", "Ghana", "Ethiopia",
			"Senegal", "Mauritius", "Seychelles", "Madagascar",
		},
		Image: "images/africa.png",
	},
}

// CountryCodes maps a country name to its ISO location code. It must
// cover every country referenced by every region; VerifyCountries checks
// that at startup.
var CountryCodes = map[string]string{
	// Asia
	"Japan": "JP", "China": "CN", "South Korea": "KR", "Thailand": "TH",
	"Vietnam": "VN", "Indonesia": "ID", "Malaysia": "MY", "Singapore": "SG",
	"Philippines": "PH", "India": "IN", "Taiwan": "TW", "Hong Kong": "HK",
	"Macau": "MO", "Cambodia": "KH", "Laos": "LA", "Myanmar": "MM",
	"Bangladesh": "BD", "Sri Lanka": "LK", "Nepal": "NP", "Mongolia": "MN",
	"Pakistan": "PK", "Maldives": "MV", "Brunei": "BN",

	// Middle East
	"United Arab Emirates": "AE", "Turkey": "TR", "Israel": "IL",
	"Saudi Arabia": "SA", "Qatar": "QA", "Kuwait": "KW", "Bahrain": "BH",
	"Oman": "OM", "Jordan": "JO", "Iraq": "IQ", "Lebanon": "LB", "Iran": "IR",

	// Europe
	"France": "FR", "Germany": "DE", "Italy": "IT", "Spain": "ES",
	"Portugal": "PT", "Netherlands": "NL", "Belgium": "BE", "Austria": "AT",
	"Switzerland": "CH", "Poland": "PL", "Czech Republic": "CZ",
	"Slovakia": "SK", "Hungary": "HU", "Romania": "RO", "Bulgaria": "BG",
	"Greece": "GR", "Croatia": "HR", "Serbia": "RS", "Slovenia": "SI",
	"Montenegro": "ME", "Albania": "AL", "North Macedonia": "MK",
	"Bosnia and Herzegovina": "BA", "Sweden": "SE", "Norway": "NO",
	"Denmark": "DK", "Finland": "FI", "Iceland": "IS", "Ireland": "IE",
	"United Kingdom": "GB", "Estonia": "EE", "Latvia": "LV",
	"Lithuania": "LT", "Luxembourg": "LU", "Malta": "MT", "Cyprus": "CY",

	// Americas
	"United States": "US", "Canada": "CA", "Mexico": "MX", "Brazil": "BR",
	"Argentina": "AR", "Chile": "CL", "Colombia": "CO", "Peru": "PE",
	"Ecuador": "EC", "Uruguay": "UY", "Paraguay": "PY", "Bolivia": "BO",
	"Costa Rica": "CR", "Panama": "PA", "Cuba": "CU",
	"Dominican Republic": "DO", "Jamaica": "JM", "Guatemala": "GT",

	// CIS
	"Kazakhstan": "KZ", "Uzbekistan": "UZ", "Kyrgyzstan": "KG",
	"Tajikistan": "TJ", "Armenia": "AM", "Azerbaijan": "AZ", "Georgia": "GE",
	"Belarus": "BY", "Moldova": "MD",

	// Africa
	"Egypt": "EG", "Morocco": "MA", "Tunisia": "TN", "Algeria": "DZ",
	"South Africa": "ZA", "Kenya": "KE", "Tanzania": "TZ", "Nigeria": "NG",
	"Ghana": "GH", "Ethiopia": "ET", "Senegal": "SN", "Mauritius": "MU",
	"Seychelles": "SC", "Madagascar": "MG",
}

// LookupCountry resolves a country name to a model.Country.
func LookupCountry(name string) (model.Country, bool) {
	code, ok := CountryCodes[name]
	if !ok {
		return model.Country{}, false
	}
	return model.Country{Name: name, Code: code}, true
}
