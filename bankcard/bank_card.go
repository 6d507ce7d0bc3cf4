package bankcard

import "regexp"

// Span patterns used to split one combined swipe into per-track inputs.
// Each span carries the leading shape of its track's grammar, not just the
// sentinel: a bare ";" or "+" can legally occur inside an earlier track's
// free-form name or discretionary data and must not start a span there.
var (
	track1Span = regexp.MustCompile(`%[A-Z][0-9]{1,19}\^[^^]{2,26}\^[^?]*\?`)
	track2Span = regexp.MustCompile(`;[0-9]{1,19}=[^?]*\?`)
	track3Span = regexp.MustCompile(`\+[^?]*\?`)
)

// BankCard combines whichever of the three tracks parsed into one logical
// card record. The tracks are usually redundant, so no cross-track
// consistency is enforced: composite fields resolve to the first track that
// reports the field present, in the fixed order Track 1, Track 2, Track 3.
type BankCard struct {
	track1 Track1FormatB
	track2 Track2
	track3 Track3
}

// NewBankCard parses up to three raw track strings, any of which may be
// blank. Parsing is eager and total; an unreadable track ends up as an
// unmatched parse result, never an error.
func NewBankCard(track1, track2, track3 string) BankCard {
	return BankCard{
		track1: ParseTrack1FormatB(track1),
		track2: ParseTrack2(track2),
		track3: ParseTrack3(track3),
	}
}

// FromSwipe splits a single raw swipe containing any combination of
// sentinel-delimited tracks and parses each span it finds. Readers commonly
// emit all tracks concatenated in one payload.
func FromSwipe(data string) BankCard {
	return NewBankCard(
		track1Span.FindString(data),
		track2Span.FindString(data),
		lastMatch(track3Span, data),
	)
}

// lastMatch returns the trailing occurrence of the pattern. Track 3 is the
// trailing "+...?" span of a swipe; an earlier track's discretionary data may
// contain a "+" of its own.
func lastMatch(pattern *regexp.Regexp, data string) string {
	spans := pattern.FindAllString(data, -1)
	if len(spans) == 0 {
		return ""
	}
	return spans[len(spans)-1]
}

func (c BankCard) Track1() Track1FormatB {
	return c.track1
}

func (c BankCard) Track2() Track2 {
	return c.track2
}

func (c BankCard) Track3() Track3 {
	return c.track3
}

func (c BankCard) HasPrimaryAccountNumber() bool {
	return c.track1.HasPrimaryAccountNumber() || c.track2.HasPrimaryAccountNumber()
}

// PrimaryAccountNumber returns the PAN from the highest-priority track that
// carries one. Track 3 never carries a PAN.
func (c BankCard) PrimaryAccountNumber() PrimaryAccountNumber {
	if c.track1.HasPrimaryAccountNumber() {
		return c.track1.PrimaryAccountNumber()
	}
	return c.track2.PrimaryAccountNumber()
}

func (c BankCard) HasName() bool {
	return c.track1.HasName()
}

// Name returns the cardholder name; only Track 1 carries one.
func (c BankCard) Name() Name {
	return c.track1.Name()
}

func (c BankCard) HasExpirationDate() bool {
	return c.track1.HasExpirationDate() || c.track2.HasExpirationDate()
}

func (c BankCard) ExpirationDate() ExpirationDate {
	if c.track1.HasExpirationDate() {
		return c.track1.ExpirationDate()
	}
	return c.track2.ExpirationDate()
}

func (c BankCard) HasServiceCode() bool {
	return c.track1.HasServiceCode() || c.track2.HasServiceCode()
}

func (c BankCard) ServiceCode() ServiceCode {
	if c.track1.HasServiceCode() {
		return c.track1.ServiceCode()
	}
	return c.track2.ServiceCode()
}
