package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cardwise/internal/domain/entity"
)

func TestSynthesizeBusiness(t *testing.T) {
	rq := require.New(t)

	business := entity.SynthesizeBusiness("Gino's Pizza", "dining")

	rq.Regexp(`^biz-[0-9a-f]{16}$`, business.ID)
	rq.Equal("Gino's Pizza", business.Name)
	rq.Equal("dining", business.Category)

	// Same merchant, any casing or padding: same ID.
	rq.Equal(business.ID, entity.SynthesizeBusiness("  GINO'S PIZZA  ", "").ID)

	rq.NotEqual(business.ID, entity.SynthesizeBusiness("Gina's Pizza", "").ID)
}
