// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/TacitBlade/Beanstodiamondscalculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for beans-calc.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; defaults apply.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Configuration{}, nil
		}
		return nil, fmt.Errorf("error accessing config file, %s", err)
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks for questionable settings and returns
// warnings; none of these prevent the application from running.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch conf.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized logging level %q, falling back to info", conf.Logging.Level))
	}

	switch conf.Logging.Format {
	case "", "json", "console":
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized logging format %q, falling back to json", conf.Logging.Format))
	}

	if conf.Output.Format != "" &&
		conf.Output.Format != constants.OutputFormatPretty &&
		conf.Output.Format != constants.OutputFormatCSV {
		warnings = append(warnings, fmt.Sprintf("unrecognized output format %q, falling back to %s",
			conf.Output.Format, constants.OutputFormatPretty))
	}

	return warnings
}
