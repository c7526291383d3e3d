package catalog

import (
	"sort"
)

// VerifyCountries cross-checks the region lists against the country-code
// mapping. It returns region countries missing a code and codes no region
// references. Run at startup as a self-test; mismatches are reported, not
// fatal.
func VerifyCountries() (missingCodes, unreferenced []string) {
	referenced := make(map[string]struct{})
	for _, region := range Regions {
		for _, name := range region.Countries {
			referenced[name] = struct{}{}
			if _, ok := CountryCodes[name]; !ok {
				missingCodes = append(missingCodes, name)
			}
		}
	}

	for name := range CountryCodes {
		if _, ok := referenced[name]; !ok {
			unreferenced = append(unreferenced, name)
		}
	}

	sort.Strings(missingCodes)
	sort.Strings(unreferenced)
	return missingCodes, unreferenced
}
