package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"cardwise/internal/domain"
	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
	"cardwise/internal/infrastructure/persistence"
	"cardwise/pkg/contextx"
	"cardwise/pkg/errcodes"
	"cardwise/pkg/httpx/reply"
	"cardwise/pkg/logx"
	"cardwise/pkg/lox"
	"cardwise/pkg/rest"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	metersPerMile        = 1609.344
	fallbackRadiusMeters = 1500
	fallbackResultLimit  = 20
)

type businessRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	Upsert(ctx context.Context, business *entity.Business) error
	Search(ctx context.Context, filter persistence.SearchFilter) ([]*entity.Business, error)
}

type placesClient interface {
	Search(ctx context.Context, coordinates value.Coordinates, radiusMeters int, categoryHint string) ([]entity.Business, error)
}

type BusinessServer struct {
	businesses businessRepository
	places     placesClient
}

func NewBusinessServer(businesses businessRepository, places placesClient) BusinessServer {
	return BusinessServer{
		businesses: businesses,
		places:     places,
	}
}

func (s BusinessServer) getV1Business(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	business, err := s.businesses.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		if code, ok := domain.GetCode(err); ok && code == errcodes.BusinessNotFound {
			return failure.NewNotFoundError(
				"business not found",
				failure.WithCode(errcodes.BusinessNotFound),
			)
		}

		return fmt.Errorf("businesses.GetByID: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBusinessDetails(*business))

	return nil
}

func (s BusinessServer) getV1BusinessesNearby(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	coordinates, err := parseCoordinates(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))
	if err != nil {
		return err
	}

	radiusMeters, err := parseRadius(r.URL.Query().Get("radius"))
	if err != nil {
		return err
	}

	categoryHint := r.URL.Query().Get("category")

	businesses, err := s.places.Search(ctx, coordinates, radiusMeters, categoryHint)
	if err != nil {
		// Provider outages degrade to whatever the store already has for the
		// area, never to a 5xx.
		logger(ctx).Warn("places lookup degraded to store", logx.Error(err))

		businesses = s.searchStore(ctx, coordinates, radiusMeters, categoryHint)
	} else {
		// Write-through so later by-id lookups resolve from the store.
		for i := range businesses {
			if err := s.businesses.Upsert(ctx, &businesses[i]); err != nil {
				logger(ctx).Warn("business write-through failed", logx.Error(err))
				break
			}
		}
	}

	reply.JSON(ctx, w, http.StatusOK, rest.NearbyResponse{
		Businesses: lox.Map(businesses, newRESTBusinessDetails),
	})

	return nil
}

func (s BusinessServer) searchStore(
	ctx context.Context,
	coordinates value.Coordinates,
	radiusMeters int,
	categoryHint string,
) []entity.Business {
	if radiusMeters <= 0 {
		radiusMeters = fallbackRadiusMeters
	}

	found, err := s.businesses.Search(ctx, persistence.SearchFilter{
		Category:    categoryHint,
		Lat:         &coordinates.Lat,
		Lng:         &coordinates.Lng,
		RadiusMiles: float64(radiusMeters) / metersPerMile,
		Limit:       fallbackResultLimit,
	})
	if err != nil {
		logger(ctx).Warn("store fallback search failed", logx.Error(err))
		return nil
	}

	businesses := make([]entity.Business, 0, len(found))
	for _, business := range found {
		businesses = append(businesses, *business)
	}

	return businesses
}

func parseCoordinates(latRaw, lngRaw string) (value.Coordinates, error) {
	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lng, lngErr := strconv.ParseFloat(lngRaw, 64)

	coordinates := value.Coordinates{Lat: lat, Lng: lng}

	if latErr != nil || lngErr != nil || !coordinates.Valid() {
		return value.Coordinates{}, failure.NewInvalidArgumentError(
			"invalid coordinates",
			failure.WithCode(errcodes.InvalidCoordinates),
			failure.WithDescription("lat and lng must be valid WGS84 coordinates"),
		)
	}

	return coordinates, nil
}

func parseRadius(radiusRaw string) (int, error) {
	if radiusRaw == "" {
		return 0, nil
	}

	radiusMeters, err := strconv.Atoi(radiusRaw)
	if err != nil || radiusMeters <= 0 {
		return 0, failure.NewInvalidArgumentError(
			"invalid radius",
			failure.WithCode(errcodes.InvalidRadius),
			failure.WithDescription("radius must be a positive integer in meters"),
		)
	}

	return radiusMeters, nil
}
