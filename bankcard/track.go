// Package bankcard decodes the data encoded on the magnetic stripe of a
// payment card per the ISO/IEC 7813 track layouts (Track 1 Format B, Track 2)
// and the ISO/IEC 4909 Track 3 layout.
//
// Parsing never fails: a blank or non-matching track string produces a result
// whose Has* accessors all report false. Results are immutable once
// constructed and safe to share.
package bankcard

import "strings"

// Track is the contract shared by the three track parsers.
type Track interface {
	// HasRawData reports whether any swipe input was supplied at all.
	HasRawData() bool
	// RawData returns the unmodified swipe payload the parser was given.
	RawData() string
	// HasTrackData reports whether the input matched the track's grammar.
	HasTrackData() bool
	// TrackData returns the matched sentinel-to-sentinel substring, verbatim.
	TrackData() string
	HasDiscretionaryData() bool
	DiscretionaryData() string
	// ExceedsMaximumLength reports whether the matched track data is longer
	// than the ISO maximum record length for the track. Overlength tracks
	// still parse; this is a diagnostic, not a rejection.
	ExceedsMaximumLength() bool
}

// baseTrack holds the state common to all track parsers.
type baseTrack struct {
	rawData           string
	trackData         string
	discretionaryData string
}

func (t baseTrack) HasRawData() bool {
	return !isBlank(t.rawData)
}

func (t baseTrack) RawData() string {
	return t.rawData
}

func (t baseTrack) HasTrackData() bool {
	return t.trackData != ""
}

func (t baseTrack) TrackData() string {
	return t.trackData
}

func (t baseTrack) HasDiscretionaryData() bool {
	return t.discretionaryData != ""
}

func (t baseTrack) DiscretionaryData() string {
	return t.discretionaryData
}

// exceedsLength is the shared overlength check against a per-track bound.
func (t baseTrack) exceedsLength(max int) bool {
	return t.HasTrackData() && len(t.trackData) > max
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
