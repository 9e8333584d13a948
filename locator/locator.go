// Package locator implements the two optional network collaborators: best-
// effort geolocation and place-to-offices search. Both absorb their own
// failures behind short timeouts and deterministic fallbacks so the
// conversation engine never stalls or sees an error.
package locator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"sahayak-agent/config"
	"sahayak-agent/engine"
	apperrors "sahayak-agent/errors"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

const userAgent = "sahayak-agent/1.0"

// Fallback place used when geolocation fails entirely.
var fallbackPlace = engine.Place{City: "Delhi", Region: "Delhi", Country: "India"}

// officeQueryTemplates are the office types searched per place, in the order
// they appear in the result.
var officeQueryTemplates = []string{
	"District Collector Office %s %s India",
	"Tehsildar Office %s %s India",
	"Block Development Office %s %s India",
	"Municipal Corporation %s %s India",
}

const maxOffices = 3

type geoResponse struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country_name"`
}

type searchResult struct {
	DisplayName string `json:"display_name"`
}

// Service is the HTTP implementation of engine.Locator.
type Service struct {
	geoURL     string
	searchURL  string
	httpClient *http.Client
	cache      *lru.Cache
	logger     *zap.Logger
}

// New builds a locator with the configured endpoints and timeout. Office
// results are cached per (place, region) since they are effectively static.
func New(cfg *config.Config, logger *zap.Logger) *Service {
	cache, err := lru.New(cfg.OfficeCacheSize)
	if err != nil {
		// Only possible with a non-positive size; run uncached.
		logger.Warn("Office cache disabled", zap.Error(err))
		cache = nil
	}
	return &Service{
		geoURL:     cfg.GeolocateURL,
		searchURL:  cfg.OfficeSearchURL,
		httpClient: &http.Client{Timeout: cfg.LookupTimeout},
		cache:      cache,
		logger:     logger,
	}
}

// Locate returns the caller's approximate place. ok is false when the lookup
// failed or returned nothing useful; the returned place is then the fixed
// fallback, never a zero value.
func (s *Service) Locate() (engine.Place, bool) {
	req, err := http.NewRequest(http.MethodGet, s.geoURL, nil)
	if err != nil {
		return fallbackPlace, false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Geolocation lookup failed", zap.Error(err))
		return fallbackPlace, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Geolocation lookup failed",
			zap.Error(apperrors.WrapErrorf(apperrors.ErrLookupUnavailable, "status %d", resp.StatusCode)))
		return fallbackPlace, false
	}

	var geo geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		s.logger.Warn("Geolocation response undecodable", zap.Error(apperrors.WrapError(err, "decode geolocation")))
		return fallbackPlace, false
	}
	if geo.City == "" || geo.City == "Unknown" {
		return fallbackPlace, false
	}

	return engine.Place{City: geo.City, Region: geo.Region, Country: geo.Country}, true
}

// Offices returns human-readable office names for a place. Search results
// are preferred; on any failure the templated fallback offices are returned.
// Always returns at least one entry.
func (s *Service) Offices(place, region string) []string {
	cacheKey := strings.ToLower(place + "|" + region)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			return cached.([]string)
		}
	}

	var offices []string
	for _, tmpl := range officeQueryTemplates {
		query := fmt.Sprintf(tmpl, place, region)
		if name, ok := s.searchOne(query); ok {
			offices = append(offices, name)
		}
		if len(offices) >= maxOffices {
			break
		}
	}

	if len(offices) == 0 {
		offices = FallbackOffices(place, region)
	}

	if s.cache != nil {
		s.cache.Add(cacheKey, offices)
	}
	return offices
}

// searchOne runs a single office search query and returns a cleaned display
// name for the top hit.
func (s *Service) searchOne(query string) (string, bool) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "in")

	req, err := http.NewRequest(http.MethodGet, s.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("Office search failed", zap.String("query", query), zap.Error(err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return "", false
	}

	// Keep only the leading address parts; full display names run very long.
	parts := strings.Split(results[0].DisplayName, ",")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	name := strings.TrimSpace(strings.Join(parts, ","))
	if name == "" {
		return "", false
	}
	return name, true
}

// FallbackOffices builds the deterministic templated office list for a place.
func FallbackOffices(place, region string) []string {
	return []string{
		fmt.Sprintf("District Collector Office, %s, %s", place, region),
		fmt.Sprintf("Municipal Corporation, %s, %s", place, region),
		fmt.Sprintf("Tehsil Office, %s, %s", place, region),
	}
}

// Static is an offline engine.Locator that never touches the network: no
// ambient location, templated offices. Used in tests and as a degraded mode.
type Static struct{}

// Locate reports no ambient location so the engine asks for a place name.
func (Static) Locate() (engine.Place, bool) {
	return fallbackPlace, false
}

// Offices returns the templated fallback offices.
func (Static) Offices(place, region string) []string {
	return FallbackOffices(place, region)
}
