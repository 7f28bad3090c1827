package utils

import (
	"clinic-service/internal/pkg/constvars"
	"strings"
	"time"
)

// ParseDate parses a calendar date formatted as YYYY-MM-DD into midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, strings.TrimSpace(value), time.UTC)
}

func FormatDate(value time.Time) string {
	return value.Format(constvars.DateLayout)
}

// ParseClockTime accepts HH:MM or HH:MM:SS and returns the canonical HH:MM:SS form.
func ParseClockTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(constvars.ClockTimeLayout, value)
	if err != nil {
		var shortErr error
		parsed, shortErr = time.Parse(constvars.ClockShortLayout, value)
		if shortErr != nil {
			return "", err
		}
	}
	return parsed.Format(constvars.ClockTimeLayout), nil
}

// Today returns the current calendar date at midnight UTC.
func Today(now func() time.Time) time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
