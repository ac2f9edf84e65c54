package testutil

import (
	"testing"

	"github.com/lepinkainen/storeview/internal/config"
	"github.com/spf13/viper"
)

// SetTestConfig resets viper, applies the application defaults and
// restores a clean viper when the test completes.
func SetTestConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	config.SetDefaults()

	t.Cleanup(viper.Reset)
}

// SetViperValue sets a viper configuration value for the duration of the test.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset; SetTestConfig's Reset covers the rest
	})
}
