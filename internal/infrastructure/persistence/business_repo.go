package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"cardwise/internal/domain"
	"cardwise/internal/domain/entity"
	"cardwise/pkg/errcodes"
)

// latDegreeMiles approximates one degree of latitude; longitude shrinks with
// latitude but the bounding box only has to be generous, not exact.
const latDegreeMiles = 69.0

type BusinessRepository struct {
	db *sqlx.DB
}

func NewBusinessRepository(db *sqlx.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `SELECT * FROM businesses WHERE id = $1`

	var schema businessSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.BusinessNotFound, "business not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get business")
	}

	business, err := schema.toDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode business")
	}

	return business, nil
}

// Upsert writes a business through, keeping the newest name/address data.
func (r *BusinessRepository) Upsert(ctx context.Context, business *entity.Business) error {
	schema, err := fromBusiness(business)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode business")
	}
	schema.UpdatedAt = time.Now()

	query := `
		INSERT INTO businesses (
			id, name, category, address, lat, lng, provider_types, updated_at
		) VALUES (
			:id, :name, :category, :address, :lat, :lng, :provider_types, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			provider_types = EXCLUDED.provider_types,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to upsert business")
	}

	return nil
}

// SearchFilter narrows a business search; zero fields are skipped.
type SearchFilter struct {
	NamePrefix  string
	Category    string
	Lat         *float64
	Lng         *float64
	RadiusMiles float64
	Limit       int
}

// Search builds the query dynamically from the filter. The geo filter is a
// coarse bounding box; precise distance ordering is the caller's concern.
func (r *BusinessRepository) Search(ctx context.Context, filter SearchFilter) ([]*entity.Business, error) {
	builder := sq.Select("*").
		From("businesses").
		PlaceholderFormat(sq.Dollar).
		OrderBy("name ASC")

	if filter.NamePrefix != "" {
		builder = builder.Where(sq.ILike{"name": filter.NamePrefix + "%"})
	}

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	if filter.Lat != nil && filter.Lng != nil && filter.RadiusMiles > 0 {
		delta := filter.RadiusMiles / latDegreeMiles
		builder = builder.
			Where(sq.GtOrEq{"lat": *filter.Lat - delta}).
			Where(sq.LtOrEq{"lat": *filter.Lat + delta}).
			Where(sq.GtOrEq{"lng": *filter.Lng - delta}).
			Where(sq.LtOrEq{"lng": *filter.Lng + delta})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to build search query")
	}

	var schemas []businessSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to search businesses")
	}

	businesses := make([]*entity.Business, 0, len(schemas))
	for i := range schemas {
		business, err := schemas[i].toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode business")
		}
		businesses = append(businesses, business)
	}

	return businesses, nil
}
