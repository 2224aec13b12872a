package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Output formats accepted by OutputFormat.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Global configuration variables
var (
	// SeedFile is an optional YAML or JSON file with the starting records
	SeedFile string
	// OutputFormat selects how responses are printed: "json" or "text"
	OutputFormat = FormatJSON
	// LogLevel is the minimum level written by the default logger
	LogLevel = slog.LevelInfo
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("catalog.seedfile", "")
	viper.SetDefault("output.format", FormatJSON)
	viper.SetDefault("log.level", "info")

	// Get values from viper
	SeedFile = viper.GetString("catalog.seedfile")
	SetOutputFormat(viper.GetString("output.format"))
	SetLogLevel(viper.GetString("log.level"))
}

// SetSeedFile sets the SeedFile path
func SetSeedFile(path string) {
	SeedFile = path
}

// SetOutputFormat sets OutputFormat, falling back to JSON for unknown values
func SetOutputFormat(format string) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		OutputFormat = FormatText
	default:
		OutputFormat = FormatJSON
	}
}

// SetLogLevel parses level names such as "debug" or "WARN" into LogLevel.
// Unknown names leave LogLevel unchanged.
func SetLogLevel(level string) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return
	}
	LogLevel = parsed
}
