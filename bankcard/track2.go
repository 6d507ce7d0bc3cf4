package bankcard

import "regexp"

// Track 2 structure per ISO/IEC 7813:
// start sentinel ";", PAN up to 19 digits, "=", expiration date (4 digits or
// "="), service code (3 digits or "="), discretionary data, end sentinel
// "?". The maximum record length is 40 characters.
var track2Pattern = regexp.MustCompile(
	`^(;([0-9]{1,19})=([0-9]{4}|=)([0-9]{3}|=)?([^?]+)?\?)`)

const track2MaxLength = 40

// Track2 is the parse result for a Track 2 string.
type Track2 struct {
	baseTrack
	pan            PrimaryAccountNumber
	expirationDate ExpirationDate
	serviceCode    ServiceCode
}

// ParseTrack2 matches a raw swipe string against the Track 2 grammar. A
// blank or non-matching input yields a result with no track data; it never
// returns an error.
func ParseTrack2(track string) Track2 {
	t := Track2{baseTrack: baseTrack{rawData: track}}
	if isBlank(track) {
		return t
	}
	m := track2Pattern.FindStringSubmatch(track)
	if m == nil {
		return t
	}

	t.trackData = m[1]
	t.pan = newAccountNumber(m[2])
	t.expirationDate = parseExpirationDate(m[3])
	t.serviceCode = parseServiceCode(m[4])
	t.discretionaryData = m[5]
	return t
}

func (t Track2) ExceedsMaximumLength() bool {
	return t.exceedsLength(track2MaxLength)
}

func (t Track2) HasPrimaryAccountNumber() bool {
	return t.pan.HasPrimaryAccountNumber()
}

func (t Track2) PrimaryAccountNumber() PrimaryAccountNumber {
	return t.pan
}

func (t Track2) HasExpirationDate() bool {
	return t.expirationDate.HasExpirationDate()
}

func (t Track2) ExpirationDate() ExpirationDate {
	return t.expirationDate
}

func (t Track2) HasServiceCode() bool {
	return t.serviceCode.HasServiceCode()
}

func (t Track2) ServiceCode() ServiceCode {
	return t.serviceCode
}
