package expiry

import (
	"fmt"
	"strconv"
	"time"
)

// Card expiration dates on magnetic stripes carry a two-digit year. All
// parsing in this package expands it with a fixed century window.
const centuryBase = 2000

var productYears = map[string]int{"credit": 3, "debit": 5}

// YearsForProduct returns validity years for a card product unless override>0.
func YearsForProduct(product string, override int) int {
	if override > 0 {
		return override
	}
	if y, ok := productYears[product]; ok {
		return y
	}
	return 5
}

// YYMM returns an expiration in YYMM for an issue date + validity years.
func YYMM(issue time.Time, years int) string {
	t := issue.UTC()
	y := (t.Year() + years) % 100
	m := int(t.Month())
	return fmt.Sprintf("%02d%02d", y, m)
}

// CardFace returns an expiration as MM/YY for card imprint.
func CardFace(issue time.Time, years int) string {
	t := issue.UTC()
	y := (t.Year() + years) % 100
	m := int(t.Month())
	return fmt.Sprintf("%02d/%02d", m, y)
}

// ValidateYYMM checks that an expiration is YYMM with month in 01..12.
func ValidateYYMM(yymm string) error {
	if len(yymm) != 4 {
		return fmt.Errorf("expiry must be YYMM (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if yymm[i] < '0' || yymm[i] > '9' {
			return fmt.Errorf("expiry must be digits: YYMM")
		}
	}
	mm := int(yymm[2]-'0')*10 + int(yymm[3]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiry month must be 01..12")
	}
	return nil
}

// ParseYYMM expands YYMM into a full year and month.
func ParseYYMM(yymm string) (year int, month time.Month, err error) {
	if err := ValidateYYMM(yymm); err != nil {
		return 0, 0, err
	}
	yy, _ := strconv.Atoi(yymm[:2])
	mm, _ := strconv.Atoi(yymm[2:])
	return centuryBase + yy, time.Month(mm), nil
}

// EndOfMonth parses YYMM into the last instant of that month in UTC.
func EndOfMonth(yymm string) (time.Time, error) {
	year, month, err := ParseYYMM(yymm)
	if err != nil {
		return time.Time{}, err
	}
	firstNext := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond), nil
}

// IsExpired reports whether time 'at' is strictly after the end of the YYMM
// month. The expiration month itself is still valid.
func IsExpired(yymm string, at time.Time) (bool, error) {
	end, err := EndOfMonth(yymm)
	if err != nil {
		return false, err
	}
	return at.UTC().After(end), nil
}
