// Package conversion implements the beans-to-diamonds conversion engine: the
// canonical rate tier table, single-tier conversion, and the greedy
// multi-tier optimizer. All operations are pure functions over the immutable
// table and are safe for concurrent use.
package conversion

import "math"

// UnboundedMax marks a tier with no upper bean limit.
const UnboundedMax = math.MaxInt

// Tier is one contiguous range of bean amounts sharing a conversion rate.
type Tier struct {
	MinBeans        int     // inclusive lower bound
	MaxBeans        int     // inclusive upper bound, UnboundedMax for the top tier
	DiamondsPerBean float64 // conversion rate, at most 1 in this domain
	Efficiency      float64 // rate as a percentage, display only
	FixedDiamonds   int     // calibrated output at exactly MaxBeans; 0 means none
}

// Unbounded reports whether the tier has no upper limit.
func (t Tier) Unbounded() bool {
	return t.MaxBeans == UnboundedMax
}

// conversionTiers is the canonical rate table. The boundaries, rates, and
// calibrated breakpoint outputs are taken from the published exchange table
// and must not be adjusted; note tier 6's rate sits slightly below tier 5's.
var conversionTiers = []Tier{
	{MinBeans: 1, MaxBeans: 8, DiamondsPerBean: 0.25, Efficiency: 25.00, FixedDiamonds: 2},
	{MinBeans: 9, MaxBeans: 109, DiamondsPerBean: 0.2661, Efficiency: 26.61, FixedDiamonds: 29},
	{MinBeans: 110, MaxBeans: 999, DiamondsPerBean: 0.2753, Efficiency: 27.53, FixedDiamonds: 275},
	{MinBeans: 1000, MaxBeans: 3999, DiamondsPerBean: 0.2763, Efficiency: 27.63, FixedDiamonds: 1105},
	{MinBeans: 4000, MaxBeans: 10999, DiamondsPerBean: 0.2768, Efficiency: 27.68, FixedDiamonds: 3045},
	{MinBeans: 11000, MaxBeans: UnboundedMax, DiamondsPerBean: 0.2767, Efficiency: 27.67},
}

// Tiers returns a copy of the canonical tier table in ascending order.
func Tiers() []Tier {
	tiers := make([]Tier, len(conversionTiers))
	copy(tiers, conversionTiers)
	return tiers
}

// FindTier scans tiers in ascending order and returns the first tier whose
// range contains beans, along with its zero-based index. The second return is
// false when beans is non-positive or no tier covers the amount.
func FindTier(beans int) (Tier, int, bool) {
	for i, tier := range conversionTiers {
		if tier.MinBeans <= beans && beans <= tier.MaxBeans {
			return tier, i, true
		}
	}
	return Tier{}, 0, false
}
