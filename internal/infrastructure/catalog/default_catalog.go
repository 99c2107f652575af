package catalog

import (
	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
)

// defaultCatalog is the built-in card set, used when no catalog file is
// configured. Order matters: it is the ranking tie-break.
func defaultCatalog() []entity.Card {
	return []entity.Card{
		{
			ID:       "amex-gold",
			Name:     "American Express Gold",
			Issuer:   "American Express",
			BaseRate: 1,
			BonusRules: []entity.BonusRule{
				{Taxonomy: value.TaxonomyDining, Rate: 4, MCCs: []string{"5812", "5814"}},
				{Taxonomy: value.TaxonomyGroceries, Rate: 4, MCCs: []string{"5411"}},
			},
			PointValueCents: 2.0,
			AnnualFee:       250,
			Popular:         true,
			BonusOffer:      "60,000 points after $6,000 spend in 6 months",
		},
		{
			ID:       "chase-sapphire-preferred",
			Name:     "Chase Sapphire Preferred",
			Issuer:   "Chase",
			BaseRate: 1,
			BonusRules: []entity.BonusRule{
				{Taxonomy: value.TaxonomyDining, Rate: 3},
				{Taxonomy: value.TaxonomyTravel, Rate: 2},
				{Taxonomy: value.TaxonomyHotels, Rate: 2},
			},
			PointValueCents: 2.05,
			AnnualFee:       95,
			Popular:         true,
			BonusOffer:      "60,000 points after $4,000 spend in 3 months",
		},
		{
			ID:       "marriott-bonvoy-boundless",
			Name:     "Marriott Bonvoy Boundless",
			Issuer:   "Chase",
			BaseRate: 2,
			BonusRules: []entity.BonusRule{
				{BrandIDs: []value.BrandID{value.BrandMarriott}, Rate: 6},
				{Taxonomy: value.TaxonomyHotels, Rate: 3},
			},
			PointValueCents: 0.8,
			AnnualFee:       95,
			BonusOffer:      "3 free nights after $3,000 spend in 3 months",
		},
		{
			ID:       "hilton-honors-surpass",
			Name:     "Hilton Honors Surpass",
			Issuer:   "American Express",
			BaseRate: 3,
			BonusRules: []entity.BonusRule{
				{BrandIDs: []value.BrandID{value.BrandHilton}, Rate: 12},
				{Taxonomy: value.TaxonomyDining, Rate: 6},
				{Taxonomy: value.TaxonomyGroceries, Rate: 6},
				{Taxonomy: value.TaxonomyGas, Rate: 6},
			},
			PointValueCents: 0.6,
			AnnualFee:       150,
		},
		{
			ID:       "chase-freedom-unlimited",
			Name:     "Chase Freedom Unlimited",
			Issuer:   "Chase",
			BaseRate: 1.5,
			BonusRules: []entity.BonusRule{
				{Taxonomy: value.TaxonomyDining, Rate: 3},
				{Taxonomy: value.TaxonomyPharmacy, Rate: 3},
			},
			PointValueCents: 1.0,
			AnnualFee:       0,
			Popular:         true,
			BonusOffer:      "$200 after $500 spend in 3 months",
		},
		{
			ID:       "amex-blue-cash-preferred",
			Name:     "Blue Cash Preferred",
			Issuer:   "American Express",
			BaseRate: 1,
			BonusRules: []entity.BonusRule{
				{Taxonomy: value.TaxonomyGroceries, Rate: 6},
				{Taxonomy: value.TaxonomyEntertainment, Rate: 6},
				{Taxonomy: value.TaxonomyGas, Rate: 3},
			},
			PointValueCents: 1.0,
			AnnualFee:       95,
		},
		{
			ID:       "capital-one-venture",
			Name:     "Capital One Venture",
			Issuer:   "Capital One",
			BaseRate: 2,
			BonusRules: []entity.BonusRule{
				{Taxonomy: value.TaxonomyHotels, Rate: 5},
				{Taxonomy: value.TaxonomyTravel, Rate: 5},
			},
			PointValueCents: 1.0,
			AnnualFee:       95,
		},
		{
			ID:       "united-explorer",
			Name:     "United Explorer",
			Issuer:   "Chase",
			BaseRate: 1,
			BonusRules: []entity.BonusRule{
				{BrandIDs: []value.BrandID{value.BrandUnited}, Rate: 2},
				{Taxonomy: value.TaxonomyDining, Rate: 2},
				{Taxonomy: value.TaxonomyHotels, Rate: 2},
			},
			PointValueCents: 1.2,
			AnnualFee:       0,
		},
		{
			ID:       "citi-double-cash",
			Name:     "Citi Double Cash",
			Issuer:   "Citi",
			BaseRate: 2,
			BonusRules: []entity.BonusRule{
				{MCCs: []string{"5411", "5812"}, Rate: 2},
			},
			PointValueCents: 1.0,
			AnnualFee:       0,
		},
	}
}
