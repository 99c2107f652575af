package catalog

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
	"cardwise/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type cardFile struct {
	Cards []cardSchema `json:"cards"`
}

type cardSchema struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Issuer          string            `json:"issuer"`
	BaseRate        float64           `json:"baseRate"`
	BonusRules      []bonusRuleSchema `json:"bonusRules"`
	PointValueCents float64           `json:"pointValueCents"`
	AnnualFee       float64           `json:"annualFee"`
	Popular         bool              `json:"popular"`
	BonusOffer      string            `json:"bonusOffer"`
}

type bonusRuleSchema struct {
	Taxonomy string   `json:"taxonomy,omitempty"`
	BrandIDs []string `json:"brandIds,omitempty"`
	MCCs     []string `json:"mcc,omitempty"`
	Rate     float64  `json:"rate"`
}

func loadFromFile(filePath string) ([]entity.Card, error) {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var file cardFile
	if err := json.Unmarshal(fileBytes, &file); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return lox.Map(file.Cards, newCard), nil
}

func newCard(schema cardSchema) entity.Card {
	return entity.Card{
		ID:              schema.ID,
		Name:            schema.Name,
		Issuer:          schema.Issuer,
		BaseRate:        schema.BaseRate,
		BonusRules:      lox.Map(schema.BonusRules, newBonusRule),
		PointValueCents: schema.PointValueCents,
		AnnualFee:       schema.AnnualFee,
		Popular:         schema.Popular,
		BonusOffer:      schema.BonusOffer,
	}
}

func newBonusRule(schema bonusRuleSchema) entity.BonusRule {
	return entity.BonusRule{
		Taxonomy: value.Taxonomy(schema.Taxonomy),
		BrandIDs: lox.Map(schema.BrandIDs, func(id string) value.BrandID { return value.BrandID(id) }),
		MCCs:     schema.MCCs,
		Rate:     schema.Rate,
	}
}
