package config_test

import (
	"os"
	"testing"
)

// unsetForTest removes keys after t.Setenv registered their restoration, so
// godotenv (which never overrides existing variables) can set them.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
}
