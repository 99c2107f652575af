package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cardwise/internal/domain"
	"cardwise/internal/domain/entity"
	"cardwise/internal/infrastructure/catalog"
	"cardwise/pkg/errcodes"
)

func TestLoadDefaultCatalog(t *testing.T) {
	rq := require.New(t)

	store := catalog.NewStore("")

	rq.Nil(store.Snapshot())
	rq.NoError(store.Load(context.Background()))

	cards := store.Snapshot()
	rq.NotEmpty(cards)

	seen := make(map[string]struct{}, len(cards))
	for _, card := range cards {
		rq.NotEmpty(card.ID)
		rq.NotEmpty(card.Name)
		rq.Positive(card.BaseRate)
		rq.Positive(card.PointValueCents)

		_, duplicate := seen[card.ID]
		rq.False(duplicate, "duplicate card id %q", card.ID)
		seen[card.ID] = struct{}{}
	}
}

func TestLoadFromFile(t *testing.T) {
	rq := require.New(t)

	filePath := filepath.Join(t.TempDir(), "catalog.json")
	fileContent := `{
		"cards": [
			{
				"id": "test-card",
				"name": "Test Card",
				"issuer": "Test Bank",
				"baseRate": 1.5,
				"bonusRules": [
					{"taxonomy": "dining", "rate": 3},
					{"brandIds": ["marriott"], "rate": 6},
					{"mcc": ["5411"], "rate": 2}
				],
				"pointValueCents": 1.25,
				"annualFee": 95,
				"popular": true,
				"bonusOffer": "10,000 points"
			}
		]
	}`
	rq.NoError(os.WriteFile(filePath, []byte(fileContent), 0o600))

	store := catalog.NewStore(filePath)
	rq.NoError(store.Load(context.Background()))

	cards := store.Snapshot()
	rq.Len(cards, 1)

	card := cards[0]
	rq.Equal("test-card", card.ID)
	rq.Equal("Test Bank", card.Issuer)
	rq.InDelta(1.5, card.BaseRate, 0.001)
	rq.Len(card.BonusRules, 3)
	rq.True(card.Popular)
}

func TestLoadMissingFile(t *testing.T) {
	rq := require.New(t)

	store := catalog.NewStore(filepath.Join(t.TempDir(), "nope.json"))

	rq.Error(store.Load(context.Background()))
	rq.Nil(store.Snapshot())
}

func TestLoadKeepsSnapshotOnFailure(t *testing.T) {
	rq := require.New(t)

	filePath := filepath.Join(t.TempDir(), "catalog.json")
	valid := `{"cards": [{"id": "c1", "name": "One", "baseRate": 1, "pointValueCents": 1}]}`
	rq.NoError(os.WriteFile(filePath, []byte(valid), 0o600))

	store := catalog.NewStore(filePath)
	rq.NoError(store.Load(context.Background()))
	rq.Len(store.Snapshot(), 1)

	// Break the file: the reload fails, the previous snapshot survives.
	broken := `{"cards": [{"id": "c1", "name": "One", "baseRate": -2, "pointValueCents": 1}]}`
	rq.NoError(os.WriteFile(filePath, []byte(broken), 0o600))

	err := store.Load(context.Background())
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.CatalogConfig, code)

	rq.Len(store.Snapshot(), 1)
	rq.Equal("c1", store.Snapshot()[0].ID)
}

func TestValidate(t *testing.T) {
	rq := require.New(t)

	valid := func() []entity.Card {
		return []entity.Card{
			{ID: "a", Name: "A", BaseRate: 1, PointValueCents: 1},
			{ID: "b", Name: "B", BaseRate: 2, PointValueCents: 1.5, BonusRules: []entity.BonusRule{
				{Taxonomy: "dining", Rate: 3},
			}},
		}
	}

	testCases := []struct {
		name   string
		mutate func(cards []entity.Card) []entity.Card
		valid  bool
	}{
		{
			name:   "valid catalog",
			mutate: func(cards []entity.Card) []entity.Card { return cards },
			valid:  true,
		},
		{
			name: "missing id",
			mutate: func(cards []entity.Card) []entity.Card {
				cards[0].ID = ""
				return cards
			},
		},
		{
			name: "missing name",
			mutate: func(cards []entity.Card) []entity.Card {
				cards[1].Name = ""
				return cards
			},
		},
		{
			name: "non-positive base rate",
			mutate: func(cards []entity.Card) []entity.Card {
				cards[0].BaseRate = 0
				return cards
			},
		},
		{
			name: "non-positive point value",
			mutate: func(cards []entity.Card) []entity.Card {
				cards[0].PointValueCents = -1
				return cards
			},
		},
		{
			name: "duplicate id",
			mutate: func(cards []entity.Card) []entity.Card {
				cards[1].ID = cards[0].ID
				return cards
			},
		},
		{
			name: "non-positive rule rate",
			mutate: func(cards []entity.Card) []entity.Card {
				cards[1].BonusRules[0].Rate = 0
				return cards
			},
		},
		{
			name: "unknown rule taxonomy",
			mutate: func(cards []entity.Card) []entity.Card {
				cards[1].BonusRules[0].Taxonomy = "space_tourism"
				return cards
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			err := catalog.Validate(tc.mutate(valid()))

			if tc.valid {
				rq.NoError(err)
				return
			}

			rq.Error(err)
			rq.True(domain.IsAppError(err))

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(errcodes.CatalogConfig, code)
		})
	}
}
