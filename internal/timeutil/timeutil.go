// Package timeutil provides time formatting and rounding utilities for
// engine arguments.
package timeutil

import (
	"fmt"
	"math"
)

// FormatSeconds converts seconds to HH:MM:SS.MS format.
//
// This format is used for engine time parameters and for progress
// display. Supports fractional seconds for precise timing.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00.00"
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(3661)   // "01:01:01.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
//	FormatSeconds(1.999)  // "00:00:01.99"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}

// RoundMillis converts a non-negative offset in seconds to whole
// milliseconds, rounding half-up. The policy matters: audio-sync test
// fixtures pin the rounded values.
//
// Example:
//
//	RoundMillis(1.5)     // 1500
//	RoundMillis(0.0004)  // 0
//	RoundMillis(0.0005)  // 1
func RoundMillis(seconds float64) int64 {
	return int64(math.Floor(seconds*1000 + 0.5))
}
