// Package timeutil provides small time formatting helpers.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration the way the npm debug package does:
// the largest whole unit wins, rounded to the nearest integer.
//
//	870µs  -> "1ms"
//	85ms   -> "85ms"
//	2.3s   -> "2s"
//	150s   -> "3m"
//	26h    -> "1d"
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", int64(d.Round(time.Millisecond)/time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%ds", int64(d.Round(time.Second)/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int64(d.Round(time.Minute)/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int64(d.Round(time.Hour)/time.Hour))
	default:
		return fmt.Sprintf("%dd", int64(d.Round(24*time.Hour)/(24*time.Hour)))
	}
}
