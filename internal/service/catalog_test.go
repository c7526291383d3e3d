package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldwidesim/esim-store/internal/model"
)

func TestIsDaily(t *testing.T) {
	tests := []struct {
		name  string
		offer model.Offer
		want  bool
	}{
		{"daily-reset data type", model.Offer{DataType: model.DataTypeDailyReset, Duration: 30, DurationUnit: model.UnitDay}, true},
		{"short day term", model.Offer{DataType: 1, Duration: 7, DurationUnit: model.UnitDay}, true},
		{"lowercase unit", model.Offer{DataType: 1, Duration: 5, DurationUnit: "day"}, true},
		{"long day term", model.Offer{DataType: 1, Duration: 30, DurationUnit: model.UnitDay}, false},
		{"short month term", model.Offer{DataType: 1, Duration: 1, DurationUnit: model.UnitMonth}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDaily(tt.offer))
		})
	}
}

func TestIsRegional(t *testing.T) {
	assert.True(t, IsRegional("Asia 12 countries 5GB", "JP"))
	assert.True(t, IsRegional("Global 1GB/Day", "JP"))
	assert.True(t, IsRegional("europe multi 10GB", "FR"))
	assert.False(t, IsRegional("Japan 1GB/Day", "JP"))
	assert.False(t, IsRegional("Turkey 5GB 30Days", "TR"))
}

func TestDedupe(t *testing.T) {
	gb := int64(1 << 30)

	t.Run("keeps cheapest per key", func(t *testing.T) {
		offers := []model.Offer{
			{PackageCode: "A", Volume: gb, Duration: 7, DurationUnit: "DAY", DataType: 2, Price: 60000},
			{PackageCode: "B", Volume: gb, Duration: 7, DurationUnit: "DAY", DataType: 2, Price: 40000},
			{PackageCode: "C", Volume: gb, Duration: 7, DurationUnit: "DAY", DataType: 2, Price: 50000},
		}
		got := Dedupe(offers)
		require.Len(t, got, 1)
		assert.Equal(t, "B", got[0].PackageCode)
	})

	t.Run("distinct keys survive in first-seen order", func(t *testing.T) {
		offers := []model.Offer{
			{PackageCode: "A", Volume: 3 * gb, Duration: 30, DurationUnit: "DAY", DataType: 1, Price: 90000},
			{PackageCode: "B", Volume: gb, Duration: 7, DurationUnit: "DAY", DataType: 2, Price: 40000},
			{PackageCode: "C", Volume: 3 * gb, Duration: 30, DurationUnit: "DAY", DataType: 1, Price: 70000},
		}
		got := Dedupe(offers)
		require.Len(t, got, 2)
		assert.Equal(t, "C", got[0].PackageCode)
		assert.Equal(t, "B", got[1].PackageCode)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Dedupe(nil))
	})
}

func TestSortOffers(t *testing.T) {
	gb := int64(1 << 30)
	offers := []model.Offer{
		{PackageCode: "fixed30", Volume: 5 * gb, Duration: 30, DurationUnit: "DAY", DataType: 1, Price: 120000},
		{PackageCode: "daily2gb", Volume: 2 * gb, Duration: 1, DurationUnit: "DAY", DataType: 2, Price: 30000},
		{PackageCode: "fixed15", Volume: 3 * gb, Duration: 15, DurationUnit: "DAY", DataType: 1, Price: 80000},
		{PackageCode: "daily1gb", Volume: gb, Duration: 1, DurationUnit: "DAY", DataType: 2, Price: 20000},
	}

	SortOffers(offers)

	codes := make([]string, len(offers))
	for i, o := range offers {
		codes[i] = o.PackageCode
	}
	assert.Equal(t, []string{"daily1gb", "daily2gb", "fixed15", "fixed30"}, codes)
}

type stubProvisioner struct {
	offers   []model.Offer
	listErr  error
	orderNo  string
	orderErr error
	profiles [][]model.Profile
	queryErr error

	listCalls  int
	queryCalls int
	lastPrice  int64
	lastPeriod int
}

func (s *stubProvisioner) ListPackages(ctx context.Context, countryCode string) ([]model.Offer, error) {
	s.listCalls++
	return s.offers, s.listErr
}

func (s *stubProvisioner) OrderProfile(ctx context.Context, packageCode string, price int64, count, periodNum int) (string, error) {
	s.lastPrice = price
	s.lastPeriod = periodNum
	if s.orderErr != nil {
		return "", s.orderErr
	}
	return s.orderNo, nil
}

func (s *stubProvisioner) QueryOrder(ctx context.Context, orderNo string) ([]model.Profile, error) {
	s.queryCalls++
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if len(s.profiles) == 0 {
		return nil, nil
	}
	batch := s.profiles[0]
	if len(s.profiles) > 1 {
		s.profiles = s.profiles[1:]
	}
	return batch, nil
}

func TestCatalogServiceListOffers(t *testing.T) {
	gb := int64(1 << 30)

	t.Run("filters dedupes and sorts", func(t *testing.T) {
		client := &stubProvisioner{offers: []model.Offer{
			{PackageCode: "regional", Name: "Asia 7 countries", Volume: gb, Duration: 7, DurationUnit: "DAY", DataType: 2, Price: 30000},
			{PackageCode: "fixed", Name: "Japan 5GB", Volume: 5 * gb, Duration: 30, DurationUnit: "DAY", DataType: 1, Price: 100000},
			{PackageCode: "dup-expensive", Name: "Japan Daily", Volume: gb, Duration: 7, DurationUnit: "DAY", DataType: 2, Price: 60000},
			{PackageCode: "dup-cheap", Name: "Japan Daily", Volume: gb, Duration: 7, DurationUnit: "DAY", DataType: 2, Price: 40000},
		}}
		svc := NewCatalogService(client)

		got := svc.ListOffers(context.Background(), "JP")
		require.Len(t, got, 2)
		assert.Equal(t, "dup-cheap", got[0].PackageCode)
		assert.Equal(t, "fixed", got[1].PackageCode)
	})

	t.Run("upstream failure degrades to empty", func(t *testing.T) {
		client := &stubProvisioner{listErr: errors.New("boom")}
		svc := NewCatalogService(client)

		assert.Empty(t, svc.ListOffers(context.Background(), "JP"))
	})
}
