package conversion

import (
	"fmt"

	"github.com/TacitBlade/Beanstodiamondscalculator/pkg/format"
)

// TableRow is one display row of the conversion tier table.
type TableRow struct {
	Range      string `json:"range"`
	Rate       string `json:"rate"`
	Efficiency string `json:"efficiency"`
	Example    string `json:"example"`
}

// TierTable renders the canonical table for display, one row per tier. The
// top tier's range is open-ended; tiers with a calibrated breakpoint show it
// as a worked example, the rest fall back to the efficiency percentage.
func TierTable() []TableRow {
	rows := make([]TableRow, 0, len(conversionTiers))
	for _, tier := range conversionTiers {
		maxStr := "∞"
		if !tier.Unbounded() {
			maxStr = format.Count(tier.MaxBeans)
		}
		efficiency := format.Percent(tier.Efficiency)
		example := efficiency
		if tier.FixedDiamonds != 0 && !tier.Unbounded() {
			example = fmt.Sprintf("%s beans = %d diamonds", format.Count(tier.MaxBeans), tier.FixedDiamonds)
		}
		rows = append(rows, TableRow{
			Range:      fmt.Sprintf("%s - %s", format.Count(tier.MinBeans), maxStr),
			Rate:       format.Rate(tier.DiamondsPerBean),
			Efficiency: efficiency,
			Example:    example,
		})
	}
	return rows
}
