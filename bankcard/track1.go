package bankcard

import "regexp"

// Track 1 Format B structure per ISO/IEC 7813:
// start sentinel "%", format code (one uppercase letter, "B" for this
// format), PAN up to 19 digits, "^", name of 2-26 characters, "^",
// expiration date (4 digits or "^"), service code (3 digits or "^"),
// discretionary data, end sentinel "?". The maximum record length is 79
// characters. Anything after the end sentinel is reader noise and ignored.
var track1FormatBPattern = regexp.MustCompile(
	`^(%([A-Z])([0-9]{1,19})\^([^^]{2,26})\^([0-9]{4}|\^)([0-9]{3}|\^)?([^?]+)?\?)`)

const track1MaxLength = 79

// Track1FormatB is the parse result for a Track 1 Format B string.
type Track1FormatB struct {
	baseTrack
	formatCode     string
	pan            PrimaryAccountNumber
	name           Name
	expirationDate ExpirationDate
	serviceCode    ServiceCode
}

// ParseTrack1FormatB matches a raw swipe string against the Track 1 Format B
// grammar. A blank or non-matching input yields a result with no track data;
// it never returns an error.
func ParseTrack1FormatB(track string) Track1FormatB {
	t := Track1FormatB{baseTrack: baseTrack{rawData: track}}
	if isBlank(track) {
		return t
	}
	m := track1FormatBPattern.FindStringSubmatch(track)
	if m == nil {
		return t
	}

	t.trackData = m[1]
	t.formatCode = m[2]
	t.pan = newAccountNumber(m[3])
	t.name = newName(m[4])
	t.expirationDate = parseExpirationDate(m[5])
	t.serviceCode = parseServiceCode(m[6])
	t.discretionaryData = m[7]
	return t
}

func (t Track1FormatB) ExceedsMaximumLength() bool {
	return t.exceedsLength(track1MaxLength)
}

func (t Track1FormatB) HasFormatCode() bool {
	return t.formatCode != ""
}

func (t Track1FormatB) FormatCode() string {
	return t.formatCode
}

func (t Track1FormatB) HasPrimaryAccountNumber() bool {
	return t.pan.HasPrimaryAccountNumber()
}

func (t Track1FormatB) PrimaryAccountNumber() PrimaryAccountNumber {
	return t.pan
}

func (t Track1FormatB) HasName() bool {
	return t.name.HasName()
}

func (t Track1FormatB) Name() Name {
	return t.name
}

// HasExpirationDate requires a present PAN as well as a valid expiration
// value: an expiration is only meaningful alongside an account number.
func (t Track1FormatB) HasExpirationDate() bool {
	return t.expirationDate.HasExpirationDate() && t.pan.HasPrimaryAccountNumber()
}

func (t Track1FormatB) ExpirationDate() ExpirationDate {
	return t.expirationDate
}

func (t Track1FormatB) HasServiceCode() bool {
	return t.serviceCode.HasServiceCode()
}

func (t Track1FormatB) ServiceCode() ServiceCode {
	return t.serviceCode
}
