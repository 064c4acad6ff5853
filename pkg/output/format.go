// Package output provides utilities for formatting and displaying conversion results.
package output

import (
	"fmt"

	"github.com/TacitBlade/Beanstodiamondscalculator/internal/conversion"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report
// of a conversion and its optimized breakdown.
func PrettyFormat(beans int, result *conversion.Result, tip string, breakdown []conversion.Allocation, total int) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("--- Conversion for %d beans ---\n", beans)
	_, _ = p.Printf("Diamonds: %d\n", result.Diamonds)
	fmt.Printf("Rate: %.4f diamonds per bean\n", result.DiamondsPerBean)
	fmt.Printf("Efficiency: %.2f%%\n", result.Efficiency)
	fmt.Printf("Tier: %d\n", result.Tier)
	if result.Remainder > 0 {
		fmt.Printf("Remainder: %d beans (may not convert)\n", result.Remainder)
	}
	if tip != "" {
		fmt.Printf("\n%s\n", tip)
	}

	fmt.Printf("\n--- Optimized breakdown ---\n")
	fmt.Printf("Tier | Beans Used | Diamonds Earned | Rate   | Efficiency\n")
	fmt.Printf("____ | __________ | _______________ | ____   | __________\n")
	for _, alloc := range breakdown {
		_, _ = p.Printf("%d | %d | %d | %.4f | %.2f%%\n",
			alloc.Tier, alloc.Beans, alloc.Diamonds, alloc.Rate, alloc.Efficiency)
	}
	_, _ = p.Printf("Total diamonds (optimized): %d\n", total)
}

// CsvFormat outputs the optimized breakdown in comma-separated value format.
func CsvFormat(beans int, result *conversion.Result, breakdown []conversion.Allocation, total int) {
	fmt.Printf(`"tier","beans used","diamonds earned","rate","efficiency"`)
	fmt.Printf("\n")
	for _, alloc := range breakdown {
		fmt.Printf(`"%d","%d","%d","%.4f","%.2f"`, alloc.Tier, alloc.Beans, alloc.Diamonds, alloc.Rate, alloc.Efficiency)
		fmt.Printf("\n")
	}
	fmt.Printf(`"total","%d","%d","%.4f","%.2f"`, beans, total, result.DiamondsPerBean, result.Efficiency)
	fmt.Printf("\n")
}

// TierTableFormat outputs the conversion tier table.
func TierTableFormat(rows []conversion.TableRow) {
	fmt.Printf("--- Conversion tier table ---\n")
	fmt.Printf("Beans Range | Rate   | Efficiency | Example\n")
	fmt.Printf("___________ | ____   | __________ | _______\n")
	for _, row := range rows {
		fmt.Printf("%s | %s | %s | %s\n", row.Range, row.Rate, row.Efficiency, row.Example)
	}
}
