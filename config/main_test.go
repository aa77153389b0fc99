package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain ensures GO_ENV is "test" so no test touches a real database.
// An unset GO_ENV is switched to "test"; any other value aborts the run.
func TestMain(m *testing.M) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		os.Setenv("GO_ENV", "test")
		env = "test"
	}
	if env != "test" {
		fmt.Fprintf(os.Stderr, "\nSAFETY CHECK FAILED: tests must run with GO_ENV=test (current GO_ENV=%q)\n"+
			"  GO_ENV=test go test ./...\n\n", env)
		os.Exit(1)
	}

	os.Exit(m.Run())
}
