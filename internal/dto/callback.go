package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback payloads understood by the purchase flow. Inert controls
// (disabled navigation, page indicator, separator) are acknowledged and
// otherwise ignored.
const (
	CallbackBuy         = "buy_esim"
	CallbackMainMenu    = "back_to_main"
	CallbackProfile     = "profile"
	CallbackConfirm     = "confirm_purchase"
	CallbackPaySBP      = "pay_sbp"
	CallbackShowDetails = "show_esim_details"
	CallbackCancel      = "cancel_purchase"
	CallbackBackToList  = "back_to_packages"

	CallbackNavDisabled = "navigation_disabled"
	CallbackPageInfo    = "page_info"
	CallbackSeparator   = "separator"

	prefixRegion      = "region_"
	prefixCountry     = "country_"
	prefixCountryPage = "page_"
	prefixPackage     = "package_"
	prefixPackagePage = "packages_page_"
	prefixDays        = "select_days_"
	prefixBackToList  = "back_to_packages_"
	prefixProfileEsim = "esim_"
)

func RegionCallback(regionKey string) string {
	return prefixRegion + regionKey
}

func ParseRegionCallback(data string) (string, bool) {
	if !strings.HasPrefix(data, prefixRegion) {
		return "", false
	}
	return strings.TrimPrefix(data, prefixRegion), true
}

func CountryCallback(name string) string {
	return prefixCountry + name
}

func ParseCountryCallback(data string) (string, bool) {
	if !strings.HasPrefix(data, prefixCountry) {
		return "", false
	}
	return strings.TrimPrefix(data, prefixCountry), true
}

func CountryPageCallback(regionKey string, page int) string {
	return fmt.Sprintf("%s%s_%d", prefixCountryPage, regionKey, page)
}

// ParseCountryPageCallback splits "page_<region>_<n>". Region keys may
// themselves contain underscores; the page number is the last segment.
func ParseCountryPageCallback(data string) (regionKey string, page int, ok bool) {
	if !strings.HasPrefix(data, prefixCountryPage) || strings.HasPrefix(data, prefixPackagePage) {
		return "", 0, false
	}
	rest := strings.TrimPrefix(data, prefixCountryPage)
	idx := strings.LastIndex(rest, "_")
	if idx <= 0 {
		return "", 0, false
	}
	page, err := strconv.Atoi(rest[idx+1:])
	if err != nil {
		return "", 0, false
	}
	return rest[:idx], page, true
}

func PackageCallback(index int) string {
	return prefixPackage + strconv.Itoa(index)
}

func ParsePackageCallback(data string) (int, bool) {
	if !strings.HasPrefix(data, prefixPackage) || strings.HasPrefix(data, prefixPackagePage) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(data, prefixPackage))
	if err != nil {
		return 0, false
	}
	return index, true
}

func PackagePageCallback(countryCode string, page int) string {
	return fmt.Sprintf("%s%s_%d", prefixPackagePage, countryCode, page)
}

func ParsePackagePageCallback(data string) (countryCode string, page int, ok bool) {
	if !strings.HasPrefix(data, prefixPackagePage) {
		return "", 0, false
	}
	parts := strings.Split(strings.TrimPrefix(data, prefixPackagePage), "_")
	if len(parts) != 2 {
		return "", 0, false
	}
	page, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, false
	}
	return parts[0], page, true
}

func DaysCallback(packageIndex, days int) string {
	return fmt.Sprintf("%s%d_%d", prefixDays, packageIndex, days)
}

func ParseDaysCallback(data string) (packageIndex, days int, ok bool) {
	if !strings.HasPrefix(data, prefixDays) {
		return 0, 0, false
	}
	parts := strings.Split(strings.TrimPrefix(data, prefixDays), "_")
	if len(parts) != 2 {
		return 0, 0, false
	}
	packageIndex, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	days, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return packageIndex, days, true
}

func BackToListCallback(countryCode string) string {
	return prefixBackToList + countryCode
}

func IsBackToListCallback(data string) bool {
	return data == CallbackBackToList || strings.HasPrefix(data, prefixBackToList)
}

func ProfileEsimCallback(index int) string {
	return prefixProfileEsim + strconv.Itoa(index)
}

func ParseProfileEsimCallback(data string) (int, bool) {
	if !strings.HasPrefix(data, prefixProfileEsim) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(data, prefixProfileEsim))
	if err != nil {
		return 0, false
	}
	return index, true
}
