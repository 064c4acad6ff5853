package conversion

import "github.com/TacitBlade/Beanstodiamondscalculator/pkg/constants"

// EfficiencyTip returns a short hint about how the amount sits against the
// efficiency thresholds.
func EfficiencyTip(beans int) string {
	switch {
	case beans < constants.LowEfficiencyCutoff:
		return "Tip: Efficiency increases significantly after 109 beans!"
	case beans < constants.MaxEfficiencyCutoff:
		return "Tip: Maximum efficiency is reached at 4000+ beans!"
	default:
		return "Great! You're at maximum efficiency tier!"
	}
}
