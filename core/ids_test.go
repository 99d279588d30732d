package core

import (
	"regexp"
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	// Prefixes the code base actually issues: newsletter signups, login
	// codes and OAuth state tokens
	prefixes := []string{"nls", "lc", "st", "  ST  "}

	fullPattern := regexp.MustCompile(`^[a-z0-9]+_[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$`)
	for _, prefix := range prefixes {
		t.Run(prefix, func(t *testing.T) {
			got := NewID(prefix)

			expectedPrefix := strings.ToLower(strings.TrimSpace(prefix)) + "_"
			if !strings.HasPrefix(got, expectedPrefix) {
				t.Errorf("NewID() = %v, want prefix %v", got, expectedPrefix)
			}
			if !fullPattern.MatchString(got) {
				t.Errorf("NewID() = %v does not match expected format", got)
			}
			if !IsValidULID(got) {
				t.Errorf("NewID() = %v should round-trip through IsValidULID", got)
			}
		})
	}
}

func TestNewIDPanicsOnEmptyPrefix(t *testing.T) {
	for _, prefix := range []string{"", "   "} {
		t.Run("prefix "+prefix, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewID(%q) expected panic but got none", prefix)
				}
			}()
			NewID(prefix)
		})
	}
}

func TestNewIDUniqueness(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("lc")
		if ids[id] {
			t.Errorf("NewID() generated duplicate ID: %v", id)
		}
		ids[id] = true
	}
}

func TestIsValidULID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "generated ID", id: NewID("nls"), want: true},
		{name: "empty string", id: "", want: false},
		{name: "no separator", id: "nls01G0EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "multiple separators", id: "nls_01G0_EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "empty prefix", id: "_01G0EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "uppercase prefix", id: "NLS_01G0EZ1XTM37C5X11SQTDNCTM1", want: false},
		{name: "ULID part too short", id: "nls_01G0EZ1XTM37C5X11SQTDNCT", want: false},
		{name: "lowercase ULID part", id: "nls_01g0ez1xtm37c5x11sqtdnctm1", want: false},
		{name: "invalid ULID characters", id: "nls_01G0EZ1XTM37C5X11SQTDNCTL1", want: false},
		{name: "just prefix", id: "nls", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidULID(tt.id); got != tt.want {
				t.Errorf("IsValidULID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
