// Package catalog holds the card-rule snapshot. The snapshot is swapped
// atomically on reload so readers never observe a partially-loaded catalog.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"cardwise/internal/domain"
	"cardwise/internal/domain/entity"
	"cardwise/pkg/contextx"
	"cardwise/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Store struct {
	filePath string
	snapshot atomic.Pointer[[]entity.Card]
}

// NewStore creates a catalog store. filePath may be empty, in which case the
// built-in catalog is used.
func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads and validates the catalog source, then swaps the snapshot. On
// error the previous snapshot (if any) stays in place.
func (s *Store) Load(ctx context.Context) error {
	cards := defaultCatalog()

	if s.filePath != "" {
		fileCards, err := loadFromFile(s.filePath)
		if err != nil {
			return fmt.Errorf("loadFromFile: %w", err)
		}
		cards = fileCards
	}

	if err := Validate(cards); err != nil {
		return fmt.Errorf("catalog.Validate: %w", err)
	}

	s.snapshot.Store(&cards)

	logger(ctx).Info("catalog loaded", slog.Int("cards", len(cards)))

	return nil
}

// Snapshot returns the current catalog. The returned slice must be treated
// as read-only.
func (s *Store) Snapshot() []entity.Card {
	cards := s.snapshot.Load()
	if cards == nil {
		return nil
	}

	return *cards
}

// Validate rejects malformed card rules. A bad catalog is a fatal
// configuration error, surfaced at load time rather than at scoring time.
func Validate(cards []entity.Card) error {
	seen := make(map[string]struct{}, len(cards))

	for i, card := range cards {
		switch {
		case card.ID == "":
			return domain.NewError(errcodes.CatalogConfig, fmt.Sprintf("card %d: missing id", i))
		case card.Name == "":
			return domain.NewError(errcodes.CatalogConfig, fmt.Sprintf("card %q: missing name", card.ID))
		case card.BaseRate <= 0:
			return domain.NewError(errcodes.CatalogConfig, fmt.Sprintf("card %q: base rate must be positive", card.ID))
		case card.PointValueCents <= 0:
			return domain.NewError(errcodes.CatalogConfig, fmt.Sprintf("card %q: point value must be positive", card.ID))
		}

		if _, ok := seen[card.ID]; ok {
			return domain.NewError(errcodes.CatalogConfig, fmt.Sprintf("card %q: duplicate id", card.ID))
		}
		seen[card.ID] = struct{}{}

		for j, rule := range card.BonusRules {
			if rule.Rate <= 0 {
				return domain.NewError(errcodes.CatalogConfig,
					fmt.Sprintf("card %q: bonus rule %d: rate must be positive", card.ID, j))
			}

			if rule.Taxonomy != "" && !rule.Taxonomy.Valid() {
				return domain.NewError(errcodes.CatalogConfig,
					fmt.Sprintf("card %q: bonus rule %d: unknown taxonomy %q", card.ID, j, rule.Taxonomy))
			}
		}
	}

	return nil
}
