// Package places is the client for the nearby-search provider. Results are
// memoized with a short TTL since nearby queries repeat heavily while a user
// is in one spot.
package places

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"

	"cardwise/internal/config"
	"cardwise/internal/domain"
	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
	"cardwise/pkg/errcodes"
	"cardwise/pkg/httpx"
	"cardwise/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type Client struct {
	baseURL       string
	defaultRadius int
	httpClient    *http.Client
	results       *cache.Cache
}

func NewClient(cfg config.Places) *Client {
	transport := httpx.NewLoggingRoundTripper(
		httpx.NewAuthBearerRoundTripper(http.DefaultTransport, staticToken(cfg.APIKey)),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(2048),
	)

	return &Client{
		baseURL:       cfg.BaseURL,
		defaultRadius: cfg.DefaultRadiusMeters,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		results: cache.New(cfg.CacheTTL, cfg.CacheTTL),
	}
}

type searchResponse struct {
	Status  string         `json:"status"`
	Results []placeListing `json:"results"`
}

type placeListing struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Types    []string `json:"types"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Search returns businesses near the coordinates. radiusMeters <= 0 uses the
// configured default. categoryHint is passed through as the provider keyword.
func (c *Client) Search(
	ctx context.Context,
	coordinates value.Coordinates,
	radiusMeters int,
	categoryHint string,
) ([]entity.Business, error) {
	if radiusMeters <= 0 {
		radiusMeters = c.defaultRadius
	}

	cacheKey := fmt.Sprintf("%.4f:%.4f:%d:%s", coordinates.Lat, coordinates.Lng, radiusMeters, categoryHint)
	if cached, found := c.results.Get(cacheKey); found {
		return cached.([]entity.Business), nil //nolint:forcetypeassert
	}

	listings, err := c.nearbySearch(ctx, coordinates, radiusMeters, categoryHint)
	if err != nil {
		return nil, err
	}

	businesses := make([]entity.Business, 0, len(listings))
	for _, listing := range listings {
		businesses = append(businesses, newBusiness(listing))
	}

	c.results.Set(cacheKey, businesses, cache.DefaultExpiration)

	return businesses, nil
}

func (c *Client) nearbySearch(
	ctx context.Context,
	coordinates value.Coordinates,
	radiusMeters int,
	categoryHint string,
) ([]placeListing, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coordinates.Lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(coordinates.Lng, 'f', -1, 64))
	query.Set("radius", strconv.Itoa(radiusMeters))
	if categoryHint != "" {
		query.Set("keyword", categoryHint)
	}

	endpoint := c.baseURL + "/nearbysearch?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.PlacesUnavailable, "nearby search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(errcodes.PlacesUnavailable,
			fmt.Sprintf("nearby search returned status %d", resp.StatusCode))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, domain.WrapError(err, errcodes.PlacesUnavailable, "nearby search decode failed")
	}

	return searchResp.Results, nil
}

func newBusiness(listing placeListing) entity.Business {
	return entity.Business{
		ID:      listing.PlaceID,
		Name:    listing.Name,
		Address: listing.Vicinity,
		Coordinates: &value.Coordinates{
			Lat: listing.Geometry.Location.Lat,
			Lng: listing.Geometry.Location.Lng,
		},
		ProviderTypes: listing.Types,
	}
}

// staticToken satisfies the auth-bearer round tripper with a fixed API key.
type staticToken string

func (staticToken) Authenticate(context.Context) error { return nil }

func (t staticToken) BearerToken() string { return string(t) }
