package kv

import (
	"testing"

	"github.com/spf13/viper"
)

// TestPerfConfigValidation verifies that the benchmark refuses parameters
// that would leave it without any work to divide among clients.
func TestPerfConfigValidation(t *testing.T) {
	// processPerfConfig reads through viper; restore the defaults afterwards
	defer func() {
		viper.Set("threads", 10)
		viper.Set("keys", 100)
		viper.Set("ops", 10000)
	}()

	cases := map[string]struct {
		key   string
		value int
	}{
		"ZeroThreads":    {"threads", 0},
		"NegativeThread": {"threads", -1},
		"ZeroKeys":       {"keys", 0},
		"ZeroOps":        {"ops", 0},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			viper.Set("threads", 10)
			viper.Set("keys", 100)
			viper.Set("ops", 10000)
			viper.Set(c.key, c.value)

			if err := processPerfConfig(perfTestCmd, nil); err == nil {
				t.Errorf("%s=%d was accepted", c.key, c.value)
			}
		})
	}

	t.Run("Valid", func(t *testing.T) {
		viper.Set("threads", 4)
		viper.Set("keys", 100)
		viper.Set("ops", 10000)

		if err := processPerfConfig(perfTestCmd, nil); err != nil {
			t.Errorf("valid configuration rejected: %v", err)
		}
		if perfNumThreads != 4 {
			t.Errorf("threads = %d, expected 4", perfNumThreads)
		}
	})
}
