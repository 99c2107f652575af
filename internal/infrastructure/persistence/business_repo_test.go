package persistence_test

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"cardwise/internal/domain"
	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
	"cardwise/internal/infrastructure/persistence"
	"cardwise/pkg/dbtest"
	"cardwise/pkg/errcodes"
)

func newTestRepository(t *testing.T) *persistence.BusinessRepository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	rq := require.New(t)

	db, err := sqlx.Connect("pgx", dsn)
	rq.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	rq.NoError(dbtest.MigrateFromFile(db, "../../../migrations/0001_businesses.sql"))

	_, err = db.Exec("TRUNCATE businesses")
	rq.NoError(err)

	return persistence.NewBusinessRepository(db)
}

func TestBusinessRepositoryRoundTrip(t *testing.T) {
	rq := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	business := &entity.Business{
		ID:            "biz-1",
		Name:          "Gino's Pizza",
		Category:      "dining",
		Address:       "12 Main St",
		Coordinates:   &value.Coordinates{Lat: 40.71, Lng: -74.0},
		ProviderTypes: []string{"restaurant", "food"},
	}

	rq.NoError(repo.Upsert(ctx, business))

	stored, err := repo.GetByID(ctx, "biz-1")
	rq.NoError(err)
	rq.Equal(business.Name, stored.Name)
	rq.Equal(business.Category, stored.Category)
	rq.Equal(business.Address, stored.Address)
	rq.Equal(business.ProviderTypes, stored.ProviderTypes)
	rq.NotNil(stored.Coordinates)
	rq.InDelta(business.Coordinates.Lat, stored.Coordinates.Lat, 0.00001)
	rq.InDelta(business.Coordinates.Lng, stored.Coordinates.Lng, 0.00001)
}

func TestBusinessRepositoryGetByIDNotFound(t *testing.T) {
	rq := require.New(t)
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), "missing")

	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.BusinessNotFound, code)
}

func TestBusinessRepositoryUpsertUpdates(t *testing.T) {
	rq := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	rq.NoError(repo.Upsert(ctx, &entity.Business{ID: "biz-1", Name: "Old Name"}))
	rq.NoError(repo.Upsert(ctx, &entity.Business{ID: "biz-1", Name: "New Name", Category: "coffee"}))

	stored, err := repo.GetByID(ctx, "biz-1")
	rq.NoError(err)
	rq.Equal("New Name", stored.Name)
	rq.Equal("coffee", stored.Category)
}

func TestBusinessRepositorySearch(t *testing.T) {
	rq := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	seed := []*entity.Business{
		{ID: "b1", Name: "Corner Cafe", Category: "coffee", Coordinates: &value.Coordinates{Lat: 40.71, Lng: -74.0}},
		{ID: "b2", Name: "Corner Store", Category: "shopping", Coordinates: &value.Coordinates{Lat: 40.72, Lng: -74.01}},
		{ID: "b3", Name: "Uptown Cafe", Category: "coffee", Coordinates: &value.Coordinates{Lat: 41.5, Lng: -73.5}},
		{ID: "b4", Name: "No Location Cafe", Category: "coffee"},
	}
	for _, business := range seed {
		rq.NoError(repo.Upsert(ctx, business))
	}

	testCases := []struct {
		name   string
		filter persistence.SearchFilter
		ids    []string
	}{
		{
			name:   "name prefix",
			filter: persistence.SearchFilter{NamePrefix: "Corner"},
			ids:    []string{"b1", "b2"},
		},
		{
			name:   "category",
			filter: persistence.SearchFilter{Category: "coffee"},
			ids:    []string{"b1", "b4", "b3"},
		},
		{
			name: "bounding box excludes distant rows",
			filter: persistence.SearchFilter{
				Lat:         ptr(40.71),
				Lng:         ptr(-74.0),
				RadiusMiles: 5,
			},
			ids: []string{"b1", "b2"},
		},
		{
			name:   "limit",
			filter: persistence.SearchFilter{Category: "coffee", Limit: 1},
			ids:    []string{"b1"},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			found, err := repo.Search(ctx, tc.filter)
			rq.NoError(err)

			ids := make([]string, 0, len(found))
			for _, business := range found {
				ids = append(ids, business.ID)
			}

			rq.Equal(tc.ids, ids)
		})
	}
}

func ptr(f float64) *float64 {
	return &f
}
