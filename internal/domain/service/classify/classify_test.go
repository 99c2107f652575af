package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/service/classify"
	"cardwise/internal/domain/value"
)

func TestClassifyBrands(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		input    classify.Input
		taxonomy value.Taxonomy
		brand    value.BrandID
	}{
		{
			name:     "Marriott hotel",
			input:    classify.Input{Name: "Marriott Downtown Hotel"},
			taxonomy: value.TaxonomyHotels,
			brand:    value.BrandMarriott,
		},
		{
			name:     "Bonvoy property maps to Marriott",
			input:    classify.Input{Name: "Bonvoy Resort & Spa"},
			taxonomy: value.TaxonomyHotels,
			brand:    value.BrandMarriott,
		},
		{
			name:     "Hilton",
			input:    classify.Input{Name: "Hilton Garden Inn Midtown"},
			taxonomy: value.TaxonomyHotels,
			brand:    value.BrandHilton,
		},
		{
			name:     "Holiday Inn maps to IHG",
			input:    classify.Input{Name: "Holiday Inn Express"},
			taxonomy: value.TaxonomyHotels,
			brand:    value.BrandIHG,
		},
		{
			name:     "Super 8 maps to Wyndham",
			input:    classify.Input{Name: "Super 8 by the airport"},
			taxonomy: value.TaxonomyHotels,
			brand:    value.BrandWyndham,
		},
		{
			name:     "Quality Inn maps to Choice",
			input:    classify.Input{Name: "Quality Inn & Suites"},
			taxonomy: value.TaxonomyHotels,
			brand:    value.BrandChoice,
		},
		{
			name:     "Airline brand maps to travel",
			input:    classify.Input{Name: "United Airlines Ticket Counter"},
			taxonomy: value.TaxonomyTravel,
			brand:    value.BrandUnited,
		},
		{
			name:     "Case insensitive",
			input:    classify.Input{Name: "MARRIOTT COURTYARD"},
			taxonomy: value.TaxonomyHotels,
			brand:    value.BrandMarriott,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			classification := classify.Classify(tc.input)

			rq.Equal(tc.taxonomy, classification.Taxonomy)
			rq.Equal(tc.brand, classification.BrandID)
			rq.InDelta(0.95, classification.Confidence, 0.001)
			rq.Equal(entity.ClassificationSourceBrand, classification.Source)
		})
	}
}

// A name containing keywords of two brands resolves to the brand declared
// first in the lexicon, regardless of keyword position in the name.
func TestClassifyBrandDeclarationOrderWins(t *testing.T) {
	rq := require.New(t)

	classification := classify.Classify(classify.Input{Name: "Hilton near Marriott Plaza"})

	rq.Equal(value.BrandMarriott, classification.BrandID)
	rq.Equal(value.TaxonomyHotels, classification.Taxonomy)
}

func TestClassifyProviderTypes(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		input         classify.Input
		taxonomy      value.Taxonomy
		minConfidence float64
		maxConfidence float64
	}{
		{
			name:          "Restaurant",
			input:         classify.Input{Name: "Local Kitchen Spot", ProviderTypes: []string{"restaurant"}},
			taxonomy:      value.TaxonomyDining,
			minConfidence: 0.8,
			maxConfidence: 0.8,
		},
		{
			name:          "Gas station",
			input:         classify.Input{Name: "Roadside Stop 42", ProviderTypes: []string{"gas_station"}},
			taxonomy:      value.TaxonomyGas,
			minConfidence: 0.8,
			maxConfidence: 0.8,
		},
		{
			name:          "Shared department store tag stays broad",
			input:         classify.Input{Name: "Galleria 9", ProviderTypes: []string{"department_store"}},
			taxonomy:      value.TaxonomyShopping,
			minConfidence: 0.5,
			maxConfidence: 0.5,
		},
		{
			name:          "Most specific type wins across tags",
			input:         classify.Input{Name: "Corner Spot 7", ProviderTypes: []string{"store", "pharmacy"}},
			taxonomy:      value.TaxonomyPharmacy,
			minConfidence: 0.8,
			maxConfidence: 0.8,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			classification := classify.Classify(tc.input)

			rq.Equal(tc.taxonomy, classification.Taxonomy)
			rq.GreaterOrEqual(classification.Confidence, tc.minConfidence)
			rq.LessOrEqual(classification.Confidence, tc.maxConfidence)
			rq.Equal(entity.ClassificationSourceProviderType, classification.Source)
			rq.True(classification.BrandID.IsZero())
		})
	}
}

func TestClassifyKeywords(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		input    classify.Input
		taxonomy value.Taxonomy
	}{
		{
			name:     "Pizza in name",
			input:    classify.Input{Name: "Gino's Pizza Palace"},
			taxonomy: value.TaxonomyDining,
		},
		{
			name:     "Hardware in name",
			input:    classify.Input{Name: "Ace Hardware #204"},
			taxonomy: value.TaxonomyHomeImprovement,
		},
		{
			name:     "Keyword in location text",
			input:    classify.Input{Name: "Mallory's", LocationText: "inside the coffee pavilion"},
			taxonomy: value.TaxonomyCoffee,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			classification := classify.Classify(tc.input)

			rq.Equal(tc.taxonomy, classification.Taxonomy)
			rq.GreaterOrEqual(classification.Confidence, 0.5)
			rq.LessOrEqual(classification.Confidence, 0.7)
			rq.Equal(entity.ClassificationSourceKeyword, classification.Source)
		})
	}
}

func TestClassifyFallback(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input classify.Input
	}{
		{name: "Unknown name", input: classify.Input{Name: "xyz123 unknown biz"}},
		{name: "Empty input", input: classify.Input{}},
		{name: "Whitespace name", input: classify.Input{Name: "   "}},
		{name: "Unknown provider types", input: classify.Input{Name: "qqq", ProviderTypes: []string{"point_of_interest"}}},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			classification := classify.Classify(tc.input)

			rq.Equal(value.TaxonomyShopping, classification.Taxonomy)
			rq.LessOrEqual(classification.Confidence, 0.4)
			rq.True(classification.BrandID.IsZero())
			rq.Equal(entity.ClassificationSourceFallback, classification.Source)
		})
	}
}

// Brand detection outranks provider types and keywords.
func TestClassifyTierPriority(t *testing.T) {
	rq := require.New(t)

	classification := classify.Classify(classify.Input{
		Name:          "Marriott Grill",
		ProviderTypes: []string{"restaurant"},
	})

	rq.Equal(value.BrandMarriott, classification.BrandID)
	rq.Equal(value.TaxonomyHotels, classification.Taxonomy)
	rq.InDelta(0.95, classification.Confidence, 0.001)
}
