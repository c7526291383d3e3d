package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCountry(t *testing.T) {
	t.Run("known country resolves to its code", func(t *testing.T) {
		country, ok := LookupCountry("Japan")
		require.True(t, ok)
		assert.Equal(t, "Japan", country.Name)
		assert.Equal(t, "JP", country.Code)
	})

	t.Run("unknown country", func(t *testing.T) {
		_, ok := LookupCountry("Atlantis")
		assert.False(t, ok)
	})
}

func TestRegionOrderCoversAllRegions(t *testing.T) {
	assert.Len(t, RegionOrder, len(Regions))
	for _, key := range RegionOrder {
		region, ok := Regions[key]
		require.True(t, ok, "region %s in order but not defined", key)
		assert.Equal(t, key, region.Key)
		assert.NotEmpty(t, region.Name)
		assert.NotEmpty(t, region.Countries)
	}
}

func TestVerifyCountries(t *testing.T) {
	missing, unreferenced := VerifyCountries()
	assert.Empty(t, missing, "every listed country needs an ISO code")
	assert.Empty(t, unreferenced, "every coded country should be listed in a region")
}

func TestCountryListsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for key, region := range Regions {
		for _, name := range region.Countries {
			if prev, dup := seen[name]; dup {
				t.Errorf("country %s listed in both %s and %s", name, prev, key)
			}
			seen[name] = key
		}
	}
}
