package tutil

import (
	"os"
	"strings"
	"testing"
)

func IsIntegrationTest() bool {
	testType := os.Getenv("ACTIVITIES_TEST")
	return strings.ToLower(testType) == "integration"
}

// SkipUnlessIntegration skips tests that need external services such as a
// MySQL server.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()
	if !IsIntegrationTest() {
		t.Skip("set ACTIVITIES_TEST=integration to run")
	}
}
