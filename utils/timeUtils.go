package utils

import (
	"fmt"
	"time"
)

// FormatTime renders a timestamp as "YYYY-MM-DD HH:MM".
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// FormatDate renders a timestamp as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDuration renders a millisecond duration as "2h 5m 30s", dropping
// leading zero units.
func FormatDuration(durationMS int64) string {
	totalSeconds := durationMS / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// CalculateDuration returns the elapsed milliseconds between two epoch-ms
// timestamps.
func CalculateDuration(startTime, endTime int64) int64 {
	return endTime - startTime
}

// CurrentTimestamp returns the current time as epoch milliseconds.
func CurrentTimestamp() int64 {
	return time.Now().UnixMilli()
}
