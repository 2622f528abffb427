package utils

import (
	"regexp"
	"strconv"
	"time"
)

var durationToken = regexp.MustCompile(`^(\d+)(s|m|h|d)?$`)

// ParseDuration converts a short token like "10s", "5m", "2h" or "1d" into a
// duration. A bare number defaults to minutes. Zero is valid.
func ParseDuration(token string) (time.Duration, bool) {
	return parse(token, false)
}

// ParseDelay is the reminder variant: the unit suffix is required.
func ParseDelay(token string) (time.Duration, bool) {
	return parse(token, true)
}

func parse(token string, unitRequired bool) (time.Duration, bool) {
	match := durationToken.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}
	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	unit := match[2]
	if unit == "" {
		if unitRequired {
			return 0, false
		}
		unit = "m"
	}
	switch unit {
	case "s":
		return time.Duration(value) * time.Second, true
	case "m":
		return time.Duration(value) * time.Minute, true
	case "h":
		return time.Duration(value) * time.Hour, true
	case "d":
		return time.Duration(value) * 24 * time.Hour, true
	default:
		return 0, false
	}
}
