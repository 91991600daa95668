package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	result := String()

	if !strings.Contains(result, "membridge version") {
		t.Errorf("String() = %q, should contain 'membridge version'", result)
	}
	if !strings.Contains(result, Version) {
		t.Errorf("String() = %q, should contain version %q", result, Version)
	}
	if !strings.Contains(result, "built") {
		t.Errorf("String() = %q, should contain 'built'", result)
	}
}

func TestDefaultValues(t *testing.T) {
	if Version != "dev" {
		t.Errorf("Version = %q, want 'dev'", Version)
	}
	if BuildTime != "unknown" {
		t.Errorf("BuildTime = %q, want 'unknown'", BuildTime)
	}
}
