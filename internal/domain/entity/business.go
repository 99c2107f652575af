package entity

import (
	"fmt"
	"hash/fnv"
	"strings"

	"cardwise/internal/domain/value"
)

// Business is a merchant/location resolved for one request. It is never
// mutated after construction.
type Business struct {
	ID            string
	Name          string
	Category      string
	Address       string
	Coordinates   *value.Coordinates
	ProviderTypes []string
}

// SynthesizeBusiness builds a transient Business from a bare name. The ID is
// a deterministic hash of the normalized name so repeated requests for the
// same merchant produce the same ID.
func SynthesizeBusiness(name, category string) Business {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(name)))) //nolint:errcheck

	return Business{
		ID:       fmt.Sprintf("biz-%016x", h.Sum64()),
		Name:     name,
		Category: category,
	}
}
