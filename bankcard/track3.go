package bankcard

import "regexp"

// Track 3 has no standardized sub-field layout in general use, so everything
// between the "+" start sentinel and the "?" end sentinel is treated as
// opaque discretionary data. A swipe may carry Track 1/Track 2 payloads
// ahead of the "+", so the span is located anywhere in the input rather than
// anchored at the start. The ISO/IEC 4909 maximum record length is 107
// characters.
var track3Pattern = regexp.MustCompile(`(\+([^?]*)\?)`)

const track3MaxLength = 107

// Track3 is the parse result for a Track 3 string.
type Track3 struct {
	baseTrack
}

// ParseTrack3 locates the trailing "+...?" span in a raw swipe string,
// ignoring any leading content. A blank input or one without the span yields
// a result with no track data; it never returns an error.
func ParseTrack3(track string) Track3 {
	t := Track3{baseTrack{rawData: track}}
	if isBlank(track) {
		return t
	}
	all := track3Pattern.FindAllStringSubmatch(track, -1)
	if all == nil {
		return t
	}
	m := all[len(all)-1]

	t.trackData = m[1]
	t.discretionaryData = m[2]
	return t
}

func (t Track3) ExceedsMaximumLength() bool {
	return t.exceedsLength(track3MaxLength)
}
