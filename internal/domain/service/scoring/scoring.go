// Package scoring ranks a card catalog against one classification.
package scoring

import (
	"fmt"
	"slices"
	"sort"

	"cardwise/internal/domain/entity"
)

// EvaluateCards scores every card in the catalog against the classification
// and returns the results sorted descending by estimated value per dollar.
// The sort is stable: equal values keep catalog order. The function is pure
// and assumes a validated catalog.
func EvaluateCards(classification entity.Classification, catalog []entity.Card) []entity.CardEval {
	evals := make([]entity.CardEval, 0, len(catalog))

	for _, card := range catalog {
		evals = append(evals, evaluateCard(classification, card))
	}

	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].EstValuePerDollar > evals[j].EstValuePerDollar
	})

	return evals
}

// evaluateCard walks the card's bonus rules in order, keeping the highest
// matching rate. A rule only upgrades the running rate when strictly greater,
// so a later lower-or-equal rule never adds a redundant reason.
func evaluateCard(classification entity.Classification, card entity.Card) entity.CardEval {
	eval := entity.CardEval{
		CardID:   card.ID,
		CardName: card.Name,
		Rate:     card.BaseRate,
	}

	for _, rule := range card.BonusRules {
		reason, ok := matchRule(classification, rule)
		if !ok {
			continue
		}

		if rule.Rate > eval.Rate {
			eval.Rate = rule.Rate
			eval.Reasons = append(eval.Reasons, reason)
			eval.BonusApplied = true
		}
	}

	if len(eval.Reasons) == 0 {
		eval.Reasons = []string{"Base earn rate"}
	}

	eval.EstValuePerDollar = eval.Rate * card.PointValueCents

	return eval
}

// matchRule checks the rule's three conditions in fixed order: taxonomy,
// brand, MCC. The first true condition supplies the reason string.
func matchRule(classification entity.Classification, rule entity.BonusRule) (string, bool) {
	if rule.Taxonomy != "" && rule.Taxonomy == classification.Taxonomy {
		return fmt.Sprintf("Bonus for %s", rule.Taxonomy), true
	}

	if !classification.BrandID.IsZero() && slices.Contains(rule.BrandIDs, classification.BrandID) {
		return "Brand bonus", true
	}

	for _, mcc := range rule.MCCs {
		if slices.Contains(classification.MCCCandidates, mcc) {
			return "MCC match", true
		}
	}

	return "", false
}
