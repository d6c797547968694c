package app

import (
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

const testModeEnv = "REGISTRAR_TEST_MODE"

var (
	testModeFlag atomic.Bool
	testModeOnce sync.Once
)

// detectTestMode reads the REGISTRAR_TEST_MODE flag once.
func detectTestMode() {
	testModeFlag.Store(os.Getenv(testModeEnv) == "1")
}

// InTestMode reports whether the application should skip runtime side effects.
func InTestMode() bool {
	testModeOnce.Do(detectTestMode)
	return testModeFlag.Load()
}

// RefreshTestMode updates the cached flag after environment changes.
func RefreshTestMode() {
	detectTestMode()
}

// BcryptCost returns the configured hashing cost, dropped to the minimum in
// test mode so suites stay fast.
func BcryptCost(cfg *Config) int {
	if InTestMode() || cfg == nil {
		return bcrypt.MinCost
	}
	return cfg.BcryptCost
}
