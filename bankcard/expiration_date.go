package bankcard

import (
	"fmt"
	"time"

	"github.com/cardops/magstripe/internal/expiry"
)

// ExpirationDate is the 4-digit YYMM expiration field, expanded with a fixed
// 2000-2099 century window. Three states are distinguished: absent (the field
// was blank or a placeholder), present but invalid (4 digits that do not form
// a calendar month), and present and valid.
type ExpirationDate struct {
	raw   string
	year  int
	month time.Month
}

// NewExpirationDate wraps a YYMM string. An empty string yields the absent
// value; anything else must be a valid YYMM or the call fails fast.
func NewExpirationDate(yymm string) (ExpirationDate, error) {
	if yymm == "" {
		return ExpirationDate{}, nil
	}
	year, month, err := expiry.ParseYYMM(yymm)
	if err != nil {
		return ExpirationDate{}, fmt.Errorf("expiration date %q: %w", yymm, err)
	}
	return ExpirationDate{raw: yymm, year: year, month: month}, nil
}

// parseExpirationDate is the parser-side constructor. Placeholder characters
// mean the field was absent on the stripe; a malformed value is kept as
// present-but-invalid rather than discarded.
func parseExpirationDate(raw string) ExpirationDate {
	switch raw {
	case "", "^", "=":
		return ExpirationDate{}
	}
	year, month, err := expiry.ParseYYMM(raw)
	if err != nil {
		return ExpirationDate{raw: raw}
	}
	return ExpirationDate{raw: raw, year: year, month: month}
}

// IsPresent reports whether the stripe carried an expiration value at all,
// valid or not.
func (e ExpirationDate) IsPresent() bool {
	return e.raw != ""
}

// HasExpirationDate reports whether the field is present and a valid month.
func (e ExpirationDate) HasExpirationDate() bool {
	return e.month != 0
}

func (e ExpirationDate) Year() int {
	return e.year
}

func (e ExpirationDate) Month() time.Month {
	return e.month
}

// IsExpiredAt reports whether the card is expired at the given instant. The
// expiration month itself is still valid through its last instant. Absent or
// invalid dates report false.
func (e ExpirationDate) IsExpiredAt(at time.Time) bool {
	if !e.HasExpirationDate() {
		return false
	}
	expired, err := expiry.IsExpired(e.raw, at)
	if err != nil {
		return false
	}
	return expired
}

// String returns the YYMM field as encoded, which may be invalid; see
// HasExpirationDate.
func (e ExpirationDate) String() string {
	return e.raw
}
