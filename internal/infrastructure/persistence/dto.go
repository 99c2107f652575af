package persistence

import (
	"database/sql"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// businessSchema maps one row of the businesses table.
type businessSchema struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	Address       string          `db:"address"`
	Lat           sql.NullFloat64 `db:"lat"`
	Lng           sql.NullFloat64 `db:"lng"`
	ProviderTypes []byte          `db:"provider_types"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (s *businessSchema) toDomain() (*entity.Business, error) {
	business := &entity.Business{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Address:  s.Address,
	}

	if s.Lat.Valid && s.Lng.Valid {
		business.Coordinates = &value.Coordinates{Lat: s.Lat.Float64, Lng: s.Lng.Float64}
	}

	if len(s.ProviderTypes) > 0 {
		if err := json.Unmarshal(s.ProviderTypes, &business.ProviderTypes); err != nil {
			return nil, fmt.Errorf("unmarshal provider types: %w", err)
		}
	}

	return business, nil
}

func fromBusiness(business *entity.Business) (*businessSchema, error) {
	schema := &businessSchema{
		ID:       business.ID,
		Name:     business.Name,
		Category: business.Category,
		Address:  business.Address,
	}

	if business.Coordinates != nil {
		schema.Lat = sql.NullFloat64{Float64: business.Coordinates.Lat, Valid: true}
		schema.Lng = sql.NullFloat64{Float64: business.Coordinates.Lng, Valid: true}
	}

	if len(business.ProviderTypes) > 0 {
		providerTypes, err := json.Marshal(business.ProviderTypes)
		if err != nil {
			return nil, fmt.Errorf("marshal provider types: %w", err)
		}
		schema.ProviderTypes = providerTypes
	}

	return schema, nil
}
