// Package rest holds the wire types of the public API.
package rest

type RecommendRequest struct {
	Category     string   `json:"category,omitempty"`
	BusinessID   string   `json:"businessId,omitempty"`
	BusinessName string   `json:"businessName,omitempty"`
	Lat          *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng          *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
}

type RecommendResponse struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations"`
	Business        *Business        `json:"business,omitempty"`
	Category        string           `json:"category"`
}

type Recommendation struct {
	Card             Card     `json:"card"`
	EstimatedPoints  float64  `json:"estimated_points"`
	AnnualValue      float64  `json:"annual_value"`
	MatchScore       int      `json:"match_score"`
	Reasons          []string `json:"reasons"`
	RewardMultiplier float64  `json:"reward_multiplier"`
	TargetCategory   string   `json:"target_category"`
}

type Card struct {
	ID         string  `json:"id"`
	CardName   string  `json:"card_name"`
	Issuer     string  `json:"issuer"`
	AnnualFee  float64 `json:"annual_fee"`
	BonusOffer string  `json:"bonus_offer,omitempty"`
	Popular    bool    `json:"popular,omitempty"`
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BusinessDetails struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category,omitempty"`
	Address       string   `json:"address,omitempty"`
	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`
	ProviderTypes []string `json:"providerTypes,omitempty"`
}

type NearbyResponse struct {
	Businesses []BusinessDetails `json:"businesses"`
}

type CardList struct {
	Cards []Card `json:"cards"`
}

// Error is the error envelope shared by all endpoints.
type Error struct {
	// Code is a stable machine-readable error code.
	Code ErrorCode `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

type ErrorCode string
