// Package constants provides shared constants for the beans-calc application.
package constants

// Conversion constants
const (
	// TierCount is the number of tiers in the canonical conversion table
	TierCount = 6

	// LowEfficiencyCutoff is the bean count below which the low-efficiency tip applies
	LowEfficiencyCutoff = 109

	// MaxEfficiencyCutoff is the bean count at which the maximum-efficiency tier begins
	MaxEfficiencyCutoff = 4000

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)
