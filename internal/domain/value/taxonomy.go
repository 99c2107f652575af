package value

import (
	"fmt"
	"strings"
)

// Taxonomy is the normalized merchant category used for card-bonus matching.
type Taxonomy string

const (
	TaxonomyDining          Taxonomy = "dining"
	TaxonomyCoffee          Taxonomy = "coffee"
	TaxonomyGroceries       Taxonomy = "groceries"
	TaxonomyGas             Taxonomy = "gas"
	TaxonomyShopping        Taxonomy = "shopping"
	TaxonomyPharmacy        Taxonomy = "pharmacy"
	TaxonomyEntertainment   Taxonomy = "entertainment"
	TaxonomyTravel          Taxonomy = "travel"
	TaxonomyElectronics     Taxonomy = "electronics"
	TaxonomyHotels          Taxonomy = "hotels"
	TaxonomyHomeImprovement Taxonomy = "home_improvement"
	TaxonomyOther           Taxonomy = "other"
)

//nolint:gochecknoglobals
var taxonomies = map[Taxonomy]struct{}{
	TaxonomyDining:          {},
	TaxonomyCoffee:          {},
	TaxonomyGroceries:       {},
	TaxonomyGas:             {},
	TaxonomyShopping:        {},
	TaxonomyPharmacy:        {},
	TaxonomyEntertainment:   {},
	TaxonomyTravel:          {},
	TaxonomyElectronics:     {},
	TaxonomyHotels:          {},
	TaxonomyHomeImprovement: {},
	TaxonomyOther:           {},
}

func (t Taxonomy) String() string {
	return string(t)
}

func (t Taxonomy) Valid() bool {
	_, ok := taxonomies[t]
	return ok
}

// ParseTaxonomy maps a free-form category string to the closed taxonomy set.
func ParseTaxonomy(raw string) (Taxonomy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")

	t := Taxonomy(normalized)
	if !t.Valid() {
		return "", fmt.Errorf("unknown taxonomy %q", raw)
	}

	return t, nil
}
