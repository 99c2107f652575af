package entity

import "cardwise/internal/domain/value"

// BonusRule is one elevated-rate condition on a card. A rule matches on its
// taxonomy, on any of its brands, or on any of its MCCs.
type BonusRule struct {
	Taxonomy value.Taxonomy
	BrandIDs []value.BrandID
	MCCs     []string
	Rate     float64
}

// Card describes one credit card's reward structure. Cards come from the
// catalog snapshot and are immutable during a request.
type Card struct {
	ID              string
	Name            string
	Issuer          string
	BaseRate        float64
	BonusRules      []BonusRule
	PointValueCents float64
	AnnualFee       float64
	Popular         bool
	BonusOffer      string
}
