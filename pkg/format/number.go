package format

import (
	"fmt"
	"strings"
)

// Count returns a whole number with thousands separators (e.g., "10,999").
func Count(n int) string {
	if n < 0 {
		return "-" + Count(-n)
	}
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var builder strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}

// Rate returns a conversion rate with four decimal places (e.g., "0.2768").
func Rate(rate float64) string {
	return fmt.Sprintf("%.4f", rate)
}

// Percent returns an efficiency percentage with two decimal places (e.g., "27.68%").
func Percent(efficiency float64) string {
	return fmt.Sprintf("%.2f%%", efficiency)
}
