package conversion

import (
	"math"
	"sort"
)

// Allocation is one tier's share of an optimized conversion.
type Allocation struct {
	Tier       int     `json:"tier"` // 1-based tier number
	Beans      int     `json:"beans"`
	Diamonds   int     `json:"diamonds"`
	Rate       float64 `json:"rate"`
	Efficiency float64 `json:"efficiency"`
}

// Optimize allocates beans across tiers to maximize diamond output. Tiers are
// filled from the highest minimum threshold down, not by rate: tier 6's rate
// dips slightly below tier 5's, and the published behavior fills by threshold
// order regardless. The unbounded top tier absorbs everything at or above its
// threshold. The returned breakdown is sorted by ascending tier number and
// its bean counts always sum to the input amount.
//
// A non-positive amount yields an empty breakdown and zero total.
func Optimize(beans int) ([]Allocation, int) {
	if beans <= 0 {
		return nil, 0
	}

	var breakdown []Allocation
	total := 0
	remaining := beans

	for i := len(conversionTiers) - 1; i >= 0; i-- {
		tier := conversionTiers[i]
		if remaining < tier.MinBeans {
			continue
		}
		usable := remaining
		if !tier.Unbounded() && tier.MaxBeans < usable {
			usable = tier.MaxBeans
		}
		diamonds := tierDiamonds(tier, usable)
		breakdown = append(breakdown, Allocation{
			Tier:       i + 1,
			Beans:      usable,
			Diamonds:   diamonds,
			Rate:       tier.DiamondsPerBean,
			Efficiency: tier.Efficiency,
		})
		total += diamonds
		remaining -= usable
	}

	// Tier 1 starts at a single bean, so this only fires if the table is
	// ever reconfigured with a gap at the bottom.
	if remaining > 0 {
		tier := conversionTiers[0]
		diamonds := int(math.Floor(float64(remaining) * tier.DiamondsPerBean))
		breakdown = append(breakdown, Allocation{
			Tier:       1,
			Beans:      remaining,
			Diamonds:   diamonds,
			Rate:       tier.DiamondsPerBean,
			Efficiency: tier.Efficiency,
		})
		total += diamonds
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Tier < breakdown[j].Tier
	})

	return breakdown, total
}
