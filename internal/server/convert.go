package server

import (
	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/service/recommend"
	"cardwise/pkg/lox"
	"cardwise/pkg/rest"
)

func newRESTRecommendResponse(result recommend.Result) rest.RecommendResponse {
	response := rest.RecommendResponse{
		Success:         true,
		Recommendations: lox.Map(result.Recommendations, newRESTRecommendation(result)),
		Category:        result.Classification.Taxonomy.String(),
	}

	if result.Business != nil {
		response.Business = &rest.Business{
			ID:   result.Business.ID,
			Name: result.Business.Name,
		}
	}

	return response
}

func newRESTRecommendation(result recommend.Result) func(recommend.Recommendation) rest.Recommendation {
	return func(recommendation recommend.Recommendation) rest.Recommendation {
		return rest.Recommendation{
			Card:             newRESTCard(recommendation.Card),
			EstimatedPoints:  recommendation.EstimatedPoints,
			AnnualValue:      recommendation.AnnualValue,
			MatchScore:       recommendation.MatchScore,
			Reasons:          recommendation.Reasons,
			RewardMultiplier: recommendation.Rate,
			TargetCategory:   result.Classification.Taxonomy.String(),
		}
	}
}

func newRESTCard(card entity.Card) rest.Card {
	return rest.Card{
		ID:         card.ID,
		CardName:   card.Name,
		Issuer:     card.Issuer,
		AnnualFee:  card.AnnualFee,
		BonusOffer: card.BonusOffer,
		Popular:    card.Popular,
	}
}

func newRESTBusinessDetails(business entity.Business) rest.BusinessDetails {
	details := rest.BusinessDetails{
		ID:            business.ID,
		Name:          business.Name,
		Category:      business.Category,
		Address:       business.Address,
		ProviderTypes: business.ProviderTypes,
	}

	if business.Coordinates != nil {
		lat, lng := business.Coordinates.Lat, business.Coordinates.Lng
		details.Lat, details.Lng = &lat, &lng
	}

	return details
}
