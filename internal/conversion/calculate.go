package conversion

import (
	"errors"
	"math"
)

// ErrInvalidAmount indicates a non-positive bean amount.
var ErrInvalidAmount = errors.New("beans must be a positive integer")

// ErrNoTierMatch indicates no tier covers the requested amount. Unreachable
// with the canonical table, but the resolver contract allows it.
var ErrNoTierMatch = errors.New("no conversion tier matches the requested amount")

// Result holds the outcome of a single-tier conversion.
type Result struct {
	Diamonds        int     `json:"diamonds"`
	Remainder       int     `json:"remainder"`
	DiamondsPerBean float64 `json:"diamondsPerBean"`
	Efficiency      float64 `json:"efficiency"`
	Tier            int     `json:"tier"` // 1-based tier number
}

// Calculate converts beans to diamonds using the single tier that covers the
// amount. At a tier's calibrated breakpoint (beans equal to the tier maximum)
// the published output value is used instead of the floor formula. The
// remainder is the portion of beans that buys no additional diamond within
// the tier's granularity; it is reported even at calibrated breakpoints.
func Calculate(beans int) (*Result, error) {
	if beans <= 0 {
		return nil, ErrInvalidAmount
	}

	tier, index, ok := FindTier(beans)
	if !ok {
		return nil, ErrNoTierMatch
	}

	return &Result{
		Diamonds:        tierDiamonds(tier, beans),
		Remainder:       beans % int(math.Ceil(1/tier.DiamondsPerBean)),
		DiamondsPerBean: tier.DiamondsPerBean,
		Efficiency:      tier.Efficiency,
		Tier:            index + 1,
	}, nil
}

// tierDiamonds computes the diamond output for beans assumed to lie entirely
// within tier, honoring the calibrated breakpoint override.
func tierDiamonds(tier Tier, beans int) int {
	if tier.FixedDiamonds != 0 && beans == tier.MaxBeans {
		return tier.FixedDiamonds
	}
	return int(math.Floor(float64(beans) * tier.DiamondsPerBean))
}
