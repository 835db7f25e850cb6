package utils

import (
	"fmt"
	"time"
)

// ChartDate formats a timestamp the way chart axes and volume buckets
// expect, e.g. "Jan 2".
func ChartDate(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatDuration renders seconds as H:MM:SS, or M:SS below one hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatShortDuration renders seconds as a short minute string, e.g. "45m".
func FormatShortDuration(seconds int) string {
	if seconds == 0 {
		return ""
	}
	return fmt.Sprintf("%dm", seconds/60)
}
