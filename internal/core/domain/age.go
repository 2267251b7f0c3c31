package domain

import (
	"fmt"
	"time"
)

const (
	dobLayout     = "2006-01-02"
	displayLayout = "01/02/2006"
)

// CalculateAge returns the age in whole years on the date of today.
func CalculateAge(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// ParseDOB parses a YYYY-MM-DD date, or an RFC3339 timestamp truncated to its
// date part, in the server-local location.
func ParseDOB(s string) (time.Time, error) {
	if len(s) > len(dobLayout) {
		if s[len(dobLayout)] != 'T' {
			return time.Time{}, fmt.Errorf("invalid date of birth %q: trailing data after date", s)
		}
		s = s[:len(dobLayout)]
	}
	t, err := time.ParseInLocation(dobLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date of birth %q: %w", s, err)
	}
	return t, nil
}

// FormatDOB renders the ISO form used on the wire between layers.
func FormatDOB(t time.Time) string {
	return t.Format(dobLayout)
}

// FormatDisplayDOB renders t the US English way, MM/DD/YYYY.
func FormatDisplayDOB(t time.Time) string {
	return t.Format(displayLayout)
}
