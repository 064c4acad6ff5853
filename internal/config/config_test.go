package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeTempConfig(t, `
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected %q", conf.Logging.Level, "debug")
	}
	if conf.Logging.Format != "console" {
		t.Errorf("logging format = %q, expected %q", conf.Logging.Format, "console")
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected %q", conf.Output.Format, "csv")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should yield defaults, got error: %v", err)
	}
	if conf.Logging.Level != "" || conf.Output.Format != "" {
		t.Errorf("expected zero-value configuration, got %+v", conf)
	}
}

func TestLoadConfigurationMalformed(t *testing.T) {
	path := writeTempConfig(t, "logging: [not a mapping")
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		conf             Configuration
		expectedWarnings int
	}{
		{
			name:             "empty config",
			conf:             Configuration{},
			expectedWarnings: 0,
		},
		{
			name: "all valid",
			conf: Configuration{
				Logging: LoggingConfig{Level: "warn", Format: "json"},
				Output:  OutputConfig{Format: "pretty"},
			},
			expectedWarnings: 0,
		},
		{
			name: "bad level",
			conf: Configuration{
				Logging: LoggingConfig{Level: "verbose"},
			},
			expectedWarnings: 1,
		},
		{
			name: "everything bad",
			conf: Configuration{
				Logging: LoggingConfig{Level: "loud", Format: "xml"},
				Output:  OutputConfig{Format: "tsv"},
			},
			expectedWarnings: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings %v, expected %d", len(warnings), warnings, tt.expectedWarnings)
			}
		})
	}
}
