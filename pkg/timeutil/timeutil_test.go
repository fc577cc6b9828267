//go:build !integration

package timeutil

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0ms"},
		{"negative clamps to zero", -5 * time.Second, "0ms"},
		{"sub-millisecond rounds", 870 * time.Microsecond, "1ms"},
		{"milliseconds", 85 * time.Millisecond, "85ms"},
		{"just under a second", 999 * time.Millisecond, "999ms"},
		{"seconds", 2300 * time.Millisecond, "2s"},
		{"just under a minute", 59 * time.Second, "59s"},
		{"minutes", 150 * time.Second, "3m"},
		{"hours", 90 * time.Minute, "2h"},
		{"days", 26 * time.Hour, "1d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}
