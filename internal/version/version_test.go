// ABOUTME: Tests for version constants
// ABOUTME: Ensures identification strings are usable in logs
package version

import (
	"strings"
	"testing"
)

func TestConstantsDefined(t *testing.T) {
	for name, value := range map[string]string{
		"Version":      Version,
		"Product":      Product,
		"Manufacturer": Manufacturer,
	} {
		if value == "" {
			t.Errorf("%s should not be empty", name)
		}
		if len(value) > 100 {
			t.Errorf("%s is unreasonably long: %q", name, value)
		}
	}
}

func TestVersionLooksLikeSemver(t *testing.T) {
	if Version != "dev" && !strings.Contains(Version, ".") {
		t.Errorf("Version %q is neither dev nor dotted", Version)
	}
}
