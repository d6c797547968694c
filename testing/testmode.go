// Package testing switches the registrar into test mode when imported by a
// test binary.
package testing

import (
	"os"
	"sync"

	"github.com/odyssey-erp/registrar/internal/app"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("REGISTRAR_TEST_MODE", "1")
		app.RefreshTestMode()
	})
}

func init() {
	ensureTestMode()
}
