package testutil

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"

	"github.com/lepinkainen/bookshelf/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	SeedFile     string
	OutputFormat string
	LogLevel     slog.Level
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		SeedFile:     config.SeedFile,
		OutputFormat: config.OutputFormat,
		LogLevel:     config.LogLevel,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.SeedFile = state.SeedFile
	config.OutputFormat = state.OutputFormat
	config.LogLevel = state.LogLevel
}

// ResetConfig saves the current config state, resets viper, and restores
// both when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		// viper has no Unset, so a previously unset key stays set.
		if hadValue {
			viper.Set(key, oldValue)
		}
	})
}

// SetupDatasetteDB enables the SQLite export into a database inside env
// and returns its path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("bookshelf.db")

	SetViperValue(t, "datasette.enabled", true)
	SetViperValue(t, "datasette.dbfile", dbPath)

	return dbPath
}
