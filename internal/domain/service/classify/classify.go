// Package classify maps a raw business name, provider type tags, and
// optional free-form location text to a normalized taxonomy, a brand when one
// is detected, and a confidence score.
package classify

import (
	"strings"

	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
)

const (
	brandConfidence    = 0.95
	fallbackConfidence = 0.4
)

// Input carries everything the classifier looks at. Name may be empty; the
// classifier never fails and falls through to the shopping fallback.
type Input struct {
	Name          string
	ProviderTypes []string
	LocationText  string
}

// Classify resolves an Input to a Classification. Tiers are tried in
// priority order: brand lexicon, provider-type table, keyword scan, fallback.
// Each tier scans its full candidate set before falling through.
func Classify(in Input) entity.Classification {
	name := strings.ToLower(in.Name)

	if c, ok := matchBrand(name); ok {
		return c
	}

	if c, ok := matchProviderTypes(in.ProviderTypes); ok {
		return c
	}

	text := name
	if in.LocationText != "" {
		text += " " + strings.ToLower(in.LocationText)
	}

	if c, ok := matchKeywords(text); ok {
		return c
	}

	return entity.Classification{
		Taxonomy:   value.TaxonomyShopping,
		Confidence: fallbackConfidence,
		Source:     entity.ClassificationSourceFallback,
	}
}

func matchBrand(name string) (entity.Classification, bool) {
	if name == "" {
		return entity.Classification{}, false
	}

	for _, brand := range brandLexicon {
		for _, keyword := range brand.keywords {
			if strings.Contains(name, keyword) {
				return entity.Classification{
					Taxonomy:   brand.taxonomy,
					BrandID:    brand.brand,
					Confidence: brandConfidence,
					Source:     entity.ClassificationSourceBrand,
				}, true
			}
		}
	}

	return entity.Classification{}, false
}

// matchProviderTypes picks the most specific mapped tag across all supplied
// provider types; ties keep the first supplied tag.
func matchProviderTypes(providerTypes []string) (entity.Classification, bool) {
	var (
		best  providerTypeMapping
		found bool
	)

	for _, providerType := range providerTypes {
		mapping, ok := providerTypeMap[strings.ToLower(providerType)]
		if !ok {
			continue
		}

		if !found || mapping.confidence > best.confidence {
			best = mapping
			found = true
		}
	}

	if !found {
		return entity.Classification{}, false
	}

	return entity.Classification{
		Taxonomy:   best.taxonomy,
		Confidence: best.confidence,
		Source:     entity.ClassificationSourceProviderType,
	}, true
}

func matchKeywords(text string) (entity.Classification, bool) {
	if strings.TrimSpace(text) == "" {
		return entity.Classification{}, false
	}

	for _, rule := range keywordRules {
		if strings.Contains(text, rule.keyword) {
			return entity.Classification{
				Taxonomy:   rule.taxonomy,
				Confidence: rule.confidence,
				Source:     entity.ClassificationSourceKeyword,
			}, true
		}
	}

	return entity.Classification{}, false
}
