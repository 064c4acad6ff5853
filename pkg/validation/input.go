// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TacitBlade/Beanstodiamondscalculator/pkg/constants"
)

// ParseBeans parses a user-entered bean amount. It rejects non-integer and
// non-positive values before the conversion engine is ever invoked.
func ParseBeans(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("no bean amount provided")
	}
	beans, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("bean amount must be a whole number, got %q", input)
	}
	if beans <= 0 {
		return 0, fmt.Errorf("bean amount must be positive, got %d", beans)
	}
	return beans, nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
