package report

import (
	"fmt"
	"time"
)

// FormatPlayTime renders seconds as HH:MM:SS or MM:SS, optionally followed by
// two digits of truncated hundredths. The hours field is omitted when zero.
func FormatPlayTime(seconds int, withMillis bool) string {
	return FormatDuration(time.Duration(seconds)*time.Second, withMillis)
}

// FormatDuration is FormatPlayTime for sub-second precision input. Negative
// durations are clamped to zero.
func FormatDuration(d time.Duration, withMillis bool) string {
	if d < 0 {
		d = 0
	}
	hours := int64(d / time.Hour)
	minutes := int64(d%time.Hour) / int64(time.Minute)
	secs := int64(d%time.Minute) / int64(time.Second)

	var out string
	if hours > 0 {
		out = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	} else {
		out = fmt.Sprintf("%02d:%02d", minutes, secs)
	}
	if withMillis {
		hundredths := int64(d%time.Second) / int64(10*time.Millisecond)
		out += fmt.Sprintf(".%02d", hundredths)
	}
	return out
}
