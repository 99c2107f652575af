// Package recommend coordinates one recommendation request: it resolves a
// business, classifies it, scores the card catalog, and assembles the
// response aggregate.
package recommend

import (
	"context"
	"math"
	"slices"
	"time"

	"git.appkode.ru/pub/go/failure"

	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/service/classify"
	"cardwise/internal/domain/service/scoring"
	"cardwise/internal/domain/value"
	"cardwise/internal/metrics"
	"cardwise/pkg/contextx"
	"cardwise/pkg/errcodes"
	"cardwise/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const nearbyThresholdMiles = 0.1

type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Business, error)
}

type BusinessCache interface {
	Get(ctx context.Context, id string) (*entity.Business, bool)
	Set(ctx context.Context, business *entity.Business)
}

type CatalogProvider interface {
	Snapshot() []entity.Card
}

type Service struct {
	businesses BusinessRepository
	cache      BusinessCache
	catalog    CatalogProvider
	metrics    *metrics.Recorder
}

func NewService(
	businesses BusinessRepository,
	cache BusinessCache,
	catalog CatalogProvider,
	recorder *metrics.Recorder,
) *Service {
	return &Service{
		businesses: businesses,
		cache:      cache,
		catalog:    catalog,
		metrics:    recorder,
	}
}

// Request is the resolved, validated recommendation request. At least one of
// Category, BusinessID or BusinessName must be set.
type Request struct {
	Category     string
	BusinessID   string
	BusinessName string
	Coordinates  *value.Coordinates
}

type Recommendation struct {
	Card              entity.Card
	Rate              float64
	EstValuePerDollar float64
	EstimatedPoints   float64
	AnnualValue       float64
	MatchScore        int
	Reasons           []string
}

type Result struct {
	Business        *entity.Business
	Classification  entity.Classification
	Recommendations []Recommendation
}

// Recommend runs the full pipeline. Store and cache failures degrade to the
// synthesized-business or category-only paths; the only error it returns is
// the missing-target validation failure, raised before any lookup.
func (s *Service) Recommend(ctx context.Context, req Request) (Result, error) {
	if req.Category == "" && req.BusinessID == "" && req.BusinessName == "" {
		return Result{}, failure.NewInvalidArgumentError(
			"recommendation target missing",
			failure.WithCode(errcodes.MissingTarget),
			failure.WithDescription("one of category, businessId or businessName is required"),
		)
	}

	start := time.Now()

	business := s.resolveBusiness(ctx, req)
	classification := s.classifyTarget(ctx, req, business)
	classification.MCCCandidates = mccCandidates[classification.Taxonomy]

	// One snapshot read per request: a concurrent reload swap must never be
	// observable between scoring and assembly.
	cards := s.catalog.Snapshot()

	evals := scoring.EvaluateCards(classification, cards)

	result := Result{
		Business:        business,
		Classification:  classification,
		Recommendations: assemble(req, business, classification, cards, evals),
	}

	if s.metrics != nil {
		s.metrics.Classification(classification.Source)
		s.metrics.Recommendation(classification.Taxonomy.String())
		s.metrics.RecommendDuration(time.Since(start).Seconds())
	}

	return result, nil
}

// resolveBusiness prefers the store (through the cache) and falls back to a
// business synthesized from the request name. Lookup failures are logged and
// absorbed, never surfaced.
func (s *Service) resolveBusiness(ctx context.Context, req Request) *entity.Business {
	if req.BusinessID != "" {
		if s.cache != nil {
			if business, ok := s.cache.Get(ctx, req.BusinessID); ok {
				return business
			}
		}

		business, err := s.businesses.GetByID(ctx, req.BusinessID)
		if err == nil {
			if s.cache != nil {
				s.cache.Set(ctx, business)
			}
			return business
		}

		logger(ctx).Warn("business lookup degraded", logx.Error(err))

		if s.metrics != nil {
			s.metrics.UpstreamDegrade("store")
		}
	}

	if req.BusinessName != "" {
		business := entity.SynthesizeBusiness(req.BusinessName, req.Category)
		return &business
	}

	return nil
}

// classifyTarget runs the classifier when a business name is available.
// Otherwise the request category is taken as the taxonomy at full
// confidence; unknown category strings go through the keyword tier.
func (s *Service) classifyTarget(ctx context.Context, req Request, business *entity.Business) entity.Classification {
	if business != nil && business.Name != "" {
		return classify.Classify(classify.Input{
			Name:          business.Name,
			ProviderTypes: business.ProviderTypes,
			LocationText:  business.Address,
		})
	}

	if req.Category != "" {
		if taxonomy, err := value.ParseTaxonomy(req.Category); err == nil {
			return entity.Classification{
				Taxonomy:   taxonomy,
				Confidence: 1.0,
				Source:     entity.ClassificationSourceCategory,
			}
		}

		logger(ctx).Debug("category not in taxonomy, scanning keywords")

		return classify.Classify(classify.Input{Name: req.Category})
	}

	return classify.Classify(classify.Input{})
}

// assemble maps scored evals to recommendations with display-only fields,
// resolving cards from the same snapshot the evals were scored against. The
// eval order is preserved: nothing added here may change the ranking.
func assemble(
	req Request,
	business *entity.Business,
	classification entity.Classification,
	cards []entity.Card,
	evals []entity.CardEval,
) []Recommendation {
	if len(evals) == 0 {
		return nil
	}

	cardsByID := make(map[string]entity.Card, len(cards))
	for _, card := range cards {
		cardsByID[card.ID] = card
	}

	bestValue := evals[0].EstValuePerDollar
	spend := monthlySpend(classification.Taxonomy)
	nearby := isNearby(req.Coordinates, business)

	recommendations := make([]Recommendation, 0, len(evals))

	for i, eval := range evals {
		card := cardsByID[eval.CardID]

		reasons := slices.Clone(eval.Reasons)
		if eval.BonusApplied {
			reasons = append(reasons, "Perfect for "+classification.Taxonomy.String()+" category")
		}
		if card.Popular {
			reasons = append(reasons, "Popular choice")
		}
		if card.AnnualFee == 0 {
			reasons = append(reasons, "No annual fee")
		}
		if nearby {
			reasons = append(reasons, "Less than 0.1 mi away")
		}

		recommendations = append(recommendations, Recommendation{
			Card:              card,
			Rate:              eval.Rate,
			EstValuePerDollar: eval.EstValuePerDollar,
			EstimatedPoints:   eval.Rate * spend * 12,
			AnnualValue:       eval.EstValuePerDollar / 100 * spend * 12,
			MatchScore:        matchScore(i, eval.EstValuePerDollar, bestValue),
			Reasons:           reasons,
		})
	}

	return recommendations
}

// matchScore normalizes value against the best card in this result set: the
// top card always scores 100, the rest scale proportionally.
func matchScore(index int, valuePerDollar, bestValue float64) int {
	if index == 0 {
		return 100
	}

	if bestValue <= 0 {
		return 0
	}

	score := int(math.Round(valuePerDollar / bestValue * 100))
	if score < 0 {
		return 0
	}

	return score
}

func isNearby(requestCoordinates *value.Coordinates, business *entity.Business) bool {
	if requestCoordinates == nil || business == nil || business.Coordinates == nil {
		return false
	}

	return requestCoordinates.DistanceMiles(*business.Coordinates) < nearbyThresholdMiles
}
