package adevent

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts a timestamp string into seconds. Three shapes are
// accepted: "HH:MM:SS" (seconds may carry a fraction), "MM:SS.ms", and plain
// seconds such as "421.7".
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	parts := strings.Split(value, ":")
	switch len(parts) {
	case 3:
		hours, errH := strconv.Atoi(parts[0])
		minutes, errM := strconv.Atoi(parts[1])
		seconds, errS := strconv.ParseFloat(parts[2], 64)
		if errH != nil || errM != nil || errS != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
	case 2:
		minutes, errM := strconv.Atoi(parts[0])
		seconds, errS := strconv.ParseFloat(parts[1], 64)
		if errM != nil || errS != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		return float64(minutes)*60 + seconds, nil
	case 1:
		seconds, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		return seconds, nil
	default:
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
}

// FormatSeconds renders seconds as "M:SS.ss", switching to "H:MM:SS.ss" from
// one hour upward.
func FormatSeconds(seconds float64) string {
	if seconds >= 3600 {
		hours := int(seconds / 3600)
		minutes := int(seconds/60) % 60
		secs := seconds - float64(hours)*3600 - float64(minutes)*60
		return fmt.Sprintf("%d:%02d:%05.2f", hours, minutes, secs)
	}
	minutes := int(seconds / 60)
	secs := seconds - float64(minutes)*60
	return fmt.Sprintf("%d:%05.2f", minutes, secs)
}
