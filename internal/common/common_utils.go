package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// ParseLegroomInches extracts the inch value from provider strings like
// "31 in" or "Above average legroom (32 in)". Returns 0 when nothing
// parseable is present.
func ParseLegroomInches(s string) int {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		f = strings.Trim(f, "()")
		if n, err := strconv.Atoi(f); err == nil && n > 0 && n < 100 {
			// Accept the number only when "in" follows or nothing does.
			if i+1 >= len(fields) || strings.HasPrefix(strings.Trim(fields[i+1], "()"), "in") {
				return n
			}
		}
	}
	return 0
}

// FormatDuration renders minutes as "7h 35m" for logs and labels.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "unknown"
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// ParseISODate validates a YYYY-MM-DD date string.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// NormalizeAirportCode upper-cases and trims an IATA code, returning ""
// when the input is not a plausible 3-letter code.
func NormalizeAirportCode(s string) string {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 3 {
		return ""
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return code
}
