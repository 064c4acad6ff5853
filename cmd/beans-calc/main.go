package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/TacitBlade/Beanstodiamondscalculator/internal/config"
	"github.com/TacitBlade/Beanstodiamondscalculator/internal/conversion"
	"github.com/TacitBlade/Beanstodiamondscalculator/internal/server"
	"github.com/TacitBlade/Beanstodiamondscalculator/pkg/constants"
	"github.com/TacitBlade/Beanstodiamondscalculator/pkg/output"
	"github.com/TacitBlade/Beanstodiamondscalculator/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	beansFlag := flag.String("beans", "", "number of beans to convert")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	showTiers := flag.Bool("show-tiers", false, "print the conversion tier table")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of a one-shot conversion")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	addressFlag := flag.String("address", "", "listen address override for the HTTP API server")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		runServer(logger, *serverConfigLocation, *addressFlag)
		return
	}

	if *showTiers && *beansFlag == "" {
		output.TierTableFormat(conversion.TierTable())
		return
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Reject non-integer or non-positive input before touching the engine.
	beans, err := validation.ParseBeans(*beansFlag)
	if err != nil {
		logger.Fatal("invalid bean amount",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	result, err := conversion.Calculate(beans)
	if err != nil {
		logger.Fatal("failed to compute conversion",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	breakdown, total := conversion.Optimize(beans)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(beans, result, conversion.EfficiencyTip(beans), breakdown, total)
		if *showTiers {
			fmt.Printf("\n")
			output.TierTableFormat(conversion.TierTable())
		}
	case constants.OutputFormatCSV:
		output.CsvFormat(beans, result, breakdown, total)
	}
}

// runServer starts the HTTP API and blocks until it exits.
func runServer(logger *zap.Logger, configLocation, addressOverride string) {
	serverConf, err := server.LoadConfig(configLocation)
	if err != nil {
		logger.Fatal("failed to load server configuration",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}

	address := serverConf.Address
	if addressOverride != "" {
		address = addressOverride
	}

	handler := server.NewHandler(logger, version)

	logger.Info("starting HTTP API server",
		zap.String("op", "main.runServer"),
		zap.String("address", address),
	)

	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("HTTP server exited",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}
}
