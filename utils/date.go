package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Today returns the current local date as "YYYY-MM-DD".
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDateParam validates a "YYYY-MM-DD" query value. Empty input yields fallback.
func ParseDateParam(value, fallback string) (string, error) {
	if value == "" {
		return fallback, nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return value, nil
}
