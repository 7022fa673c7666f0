package models

import (
	"fmt"
	"regexp"
	"time"
)

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ParseClock converts an "HH:MM" 24-hour time string to minutes from
// midnight.
func ParseClock(hhmm string) (int, error) {
	if !clockPattern.MatchString(hhmm) {
		return 0, fmt.Errorf("time %q does not match HH:MM", hhmm)
	}
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("time %q does not match HH:MM", hhmm)
	}
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", hhmm)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as an "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidClock reports whether s is a well-formed "HH:MM" time.
func ValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// ValidDate reports whether s is a well-formed "YYYY-MM-DD" date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Overlaps reports whether the half-open minute intervals
// [aStart,aEnd) and [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
