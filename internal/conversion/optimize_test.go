package conversion

import "testing"

func TestOptimize(t *testing.T) {
	tests := []struct {
		name          string
		beans         int
		expectedTotal int
		expectedTiers []int // ascending tier numbers in the breakdown
	}{
		{name: "single bean", beans: 1, expectedTotal: 0, expectedTiers: []int{1}},
		{name: "tier 1 breakpoint", beans: 8, expectedTotal: 2, expectedTiers: []int{1}},
		{name: "tier 2 amount", beans: 100, expectedTotal: 26, expectedTiers: []int{2}},
		{name: "tier 4 amount", beans: 2500, expectedTotal: 690, expectedTiers: []int{4}},
		{name: "tier 5 amount", beans: 10803, expectedTotal: 2990, expectedTiers: []int{5}},
		{name: "tier 5 breakpoint", beans: 10999, expectedTotal: 3045, expectedTiers: []int{5}},
		{name: "top tier threshold", beans: 11000, expectedTotal: 3043, expectedTiers: []int{6}},
		{name: "deep in top tier", beans: 25000, expectedTotal: 6917, expectedTiers: []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, total := Optimize(tt.beans)
			if total != tt.expectedTotal {
				t.Errorf("Optimize(%d) total = %d, expected %d", tt.beans, total, tt.expectedTotal)
			}
			if len(breakdown) != len(tt.expectedTiers) {
				t.Fatalf("Optimize(%d) produced %d allocations, expected %d", tt.beans, len(breakdown), len(tt.expectedTiers))
			}
			for i, alloc := range breakdown {
				if alloc.Tier != tt.expectedTiers[i] {
					t.Errorf("allocation %d in tier %d, expected %d", i, alloc.Tier, tt.expectedTiers[i])
				}
			}
		})
	}
}

func TestOptimizeConservesBeans(t *testing.T) {
	for _, beans := range []int{1, 8, 9, 109, 110, 999, 1000, 3999, 4000, 10803, 10999, 11000, 50000, 1234567} {
		breakdown, _ := Optimize(beans)
		sum := 0
		for _, alloc := range breakdown {
			sum += alloc.Beans
		}
		if sum != beans {
			t.Errorf("Optimize(%d) allocated %d beans in total", beans, sum)
		}
	}
}

func TestOptimizeBreakdownAscending(t *testing.T) {
	for _, beans := range []int{50, 5000, 300000} {
		breakdown, _ := Optimize(beans)
		for i := 1; i < len(breakdown); i++ {
			if breakdown[i].Tier <= breakdown[i-1].Tier {
				t.Errorf("Optimize(%d) breakdown out of order at entry %d", beans, i)
			}
		}
	}
}

func TestOptimizeMonotonicWithinRateRegions(t *testing.T) {
	// Output never decreases as beans grow, except across the 10999 -> 11000
	// boundary where the top tier's lower rate takes over.
	prev := -1
	for beans := 1; beans <= 10999; beans++ {
		_, total := Optimize(beans)
		if total < prev {
			t.Fatalf("Optimize(%d) total %d dropped below Optimize(%d) total %d", beans, total, beans-1, prev)
		}
		prev = total
	}
	prev = -1
	for beans := 11000; beans <= 30000; beans++ {
		_, total := Optimize(beans)
		if total < prev {
			t.Fatalf("Optimize(%d) total %d dropped below Optimize(%d) total %d", beans, total, beans-1, prev)
		}
		prev = total
	}
}

func TestOptimizeTopTierRateDip(t *testing.T) {
	// The published table fills by threshold order, so crossing into tier 6
	// costs two diamonds despite the larger input.
	_, atBreakpoint := Optimize(10999)
	_, atThreshold := Optimize(11000)
	if atBreakpoint != 3045 || atThreshold != 3043 {
		t.Errorf("expected 3045/3043 across the tier 6 boundary, got %d/%d", atBreakpoint, atThreshold)
	}
}

func TestOptimizeFillsByThresholdNotRate(t *testing.T) {
	// Everything at or above the top tier threshold lands in tier 6 even
	// though tier 5 pays a marginally better rate.
	breakdown, _ := Optimize(15000)
	if len(breakdown) != 1 || breakdown[0].Tier != 6 {
		t.Fatalf("Optimize(15000) breakdown = %+v, expected a single tier 6 allocation", breakdown)
	}
	if breakdown[0].Beans != 15000 {
		t.Errorf("tier 6 allocation used %d beans, expected 15000", breakdown[0].Beans)
	}
}

func TestOptimizeInvalidAmount(t *testing.T) {
	for _, beans := range []int{0, -1, -9999} {
		breakdown, total := Optimize(beans)
		if len(breakdown) != 0 || total != 0 {
			t.Errorf("Optimize(%d) = (%d allocations, %d), expected empty and zero", beans, len(breakdown), total)
		}
	}
}

func TestOptimizeMatchesCalculate(t *testing.T) {
	// With a contiguous table starting at one bean, the greedy fill always
	// lands the whole amount in the tier Calculate resolves.
	for _, beans := range []int{3, 42, 777, 3500, 9000, 200000} {
		result, err := Calculate(beans)
		if err != nil {
			t.Fatalf("Calculate(%d) returned error: %v", beans, err)
		}
		breakdown, total := Optimize(beans)
		if total != result.Diamonds {
			t.Errorf("Optimize(%d) total = %d, Calculate gave %d", beans, total, result.Diamonds)
		}
		if len(breakdown) != 1 || breakdown[0].Tier != result.Tier {
			t.Errorf("Optimize(%d) breakdown = %+v, expected one allocation in tier %d", beans, breakdown, result.Tier)
		}
	}
}
