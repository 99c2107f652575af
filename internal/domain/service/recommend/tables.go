package recommend

import "cardwise/internal/domain/value"

// mccCandidates are the merchant category codes plausibly carried by a
// merchant of each taxonomy, used to exercise MCC-keyed bonus rules.
//
//nolint:gochecknoglobals
var mccCandidates = map[value.Taxonomy][]string{
	value.TaxonomyDining:          {"5812", "5813", "5814"},
	value.TaxonomyCoffee:          {"5814"},
	value.TaxonomyGroceries:       {"5411"},
	value.TaxonomyGas:             {"5541", "5542"},
	value.TaxonomyShopping:        {"5311", "5651"},
	value.TaxonomyPharmacy:        {"5912"},
	value.TaxonomyEntertainment:   {"7832", "7996"},
	value.TaxonomyTravel:          {"4511", "4722"},
	value.TaxonomyElectronics:     {"5732"},
	value.TaxonomyHotels:          {"7011"},
	value.TaxonomyHomeImprovement: {"5200", "5211"},
}

// assumedMonthlySpend is a rough per-category monthly spend in dollars,
// feeding the annual-value estimate. Placeholder figures; only the
// rate x spend x 12 shape is contractual.
//
//nolint:gochecknoglobals
var assumedMonthlySpend = map[value.Taxonomy]float64{
	value.TaxonomyDining:          400,
	value.TaxonomyCoffee:          60,
	value.TaxonomyGroceries:       600,
	value.TaxonomyGas:             150,
	value.TaxonomyShopping:        300,
	value.TaxonomyPharmacy:        80,
	value.TaxonomyEntertainment:   120,
	value.TaxonomyTravel:          250,
	value.TaxonomyElectronics:     100,
	value.TaxonomyHotels:          200,
	value.TaxonomyHomeImprovement: 150,
	value.TaxonomyOther:           200,
}

func monthlySpend(taxonomy value.Taxonomy) float64 {
	if spend, ok := assumedMonthlySpend[taxonomy]; ok {
		return spend
	}

	return assumedMonthlySpend[value.TaxonomyOther]
}
