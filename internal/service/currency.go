package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const currencyTimeout = 5 * time.Second

// RateService resolves the USD→local conversion rate from two ranked
// sources with an in-process TTL cache. Rate never fails: when both
// sources are down it serves the last known value, stale or seeded.
type RateService struct {
	marketURL  string
	centralURL string
	pair       string
	currency   string
	cacheTTL   time.Duration

	httpClient *http.Client
	now        func() time.Time

	mu          sync.Mutex
	rate        float64
	lastRefresh time.Time
}

type RateOption func(*RateService)

// WithClock injects the clock, for tests.
func WithClock(now func() time.Time) RateOption {
	return func(s *RateService) { s.now = now }
}

// WithHTTPClient overrides the HTTP client, for tests.
func WithHTTPClient(c *http.Client) RateOption {
	return func(s *RateService) { s.httpClient = c }
}

func NewRateService(marketURL, centralURL, pair, currency string, fallback float64, cacheTTL time.Duration, opts ...RateOption) *RateService {
	s := &RateService{
		marketURL:  marketURL,
		centralURL: centralURL,
		pair:       pair,
		currency:   currency,
		cacheTTL:   cacheTTL,
		httpClient: &http.Client{Timeout: currencyTimeout},
		now:        time.Now,
		rate:       fallback,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rate returns the cached rate when fresh, otherwise refreshes from the
// market feed, falling back to the central-bank feed, falling back to the
// last known value. The refresh timestamp only advances on success, so a
// degraded call retries both sources next time instead of waiting out a
// fake TTL.
func (s *RateService) Rate(ctx context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastRefresh) < s.cacheTTL {
		return s.rate
	}

	if rate, err := s.fetchMarketRate(ctx); err == nil {
		s.rate = rate
		s.lastRefresh = now
		log.Info().Float64("rate", rate).Str("source", "market").Msg("currency rate refreshed")
		return s.rate
	} else {
		log.Warn().Err(err).Str("source", "market").Msg("currency rate fetch failed")
	}

	if rate, err := s.fetchCentralRate(ctx); err == nil {
		s.rate = rate
		s.lastRefresh = now
		log.Info().Float64("rate", rate).Str("source", "central").Msg("currency rate refreshed")
		return s.rate
	} else {
		log.Warn().Err(err).Str("source", "central").Msg("currency rate fetch failed")
	}

	log.Warn().Float64("rate", s.rate).Msg("using last known currency rate")
	return s.rate
}

func (s *RateService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// fetchMarketRate digs the pair's "high" value out of the market feed.
// The feed has shipped two shapes over time: a mapping keyed by pair and
// a list of records with a "symbol" field; both are tolerated.
func (s *RateService) fetchMarketRate(ctx context.Context) (float64, error) {
	body, err := s.get(ctx, s.marketURL)
	if err != nil {
		return 0, err
	}

	data := gjson.ParseBytes(body)

	if data.IsObject() {
		if high := data.Get(gjson.Escape(s.pair) + ".high"); high.Exists() && high.Float() > 0 {
			return high.Float(), nil
		}
		// Other keyed layouts: any key naming both legs of the pair.
		legs := strings.SplitN(s.pair, "/", 2)
		var rate float64
		data.ForEach(func(key, value gjson.Result) bool {
			if len(legs) == 2 && strings.Contains(key.String(), legs[0]) && strings.Contains(key.String(), legs[1]) {
				if high := value.Get("high"); high.Exists() && high.Float() > 0 {
					rate = high.Float()
					return false
				}
			}
			return true
		})
		if rate > 0 {
			return rate, nil
		}
	}

	if data.IsArray() {
		var rate float64
		data.ForEach(func(_, value gjson.Result) bool {
			if value.Get("symbol").String() == s.pair {
				if high := value.Get("high"); high.Exists() && high.Float() > 0 {
					rate = high.Float()
					return false
				}
			}
			return true
		})
		if rate > 0 {
			return rate, nil
		}
	}

	return 0, fmt.Errorf("pair %s not found in market feed", s.pair)
}

func (s *RateService) fetchCentralRate(ctx context.Context) (float64, error) {
	body, err := s.get(ctx, s.centralURL)
	if err != nil {
		return 0, err
	}

	value := gjson.GetBytes(body, "Valute."+s.currency+".Value")
	if !value.Exists() || value.Float() <= 0 {
		return 0, fmt.Errorf("currency %s not found in central feed", s.currency)
	}
	return value.Float(), nil
}
