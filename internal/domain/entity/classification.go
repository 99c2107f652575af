package entity

import "cardwise/internal/domain/value"

// Classification tier that produced the result, used for logging and metrics.
const (
	ClassificationSourceBrand        = "brand"
	ClassificationSourceProviderType = "provider_type"
	ClassificationSourceKeyword      = "keyword"
	ClassificationSourceFallback     = "fallback"
	ClassificationSourceCategory     = "category"
)

// Classification is the classifier output for one business.
type Classification struct {
	Taxonomy      value.Taxonomy
	BrandID       value.BrandID
	Confidence    float64
	Source        string
	MCCCandidates []string
}

// CardEval is one scored card against one classification.
type CardEval struct {
	CardID            string
	CardName          string
	Rate              float64
	EstValuePerDollar float64
	Reasons           []string
	BonusApplied      bool
}
