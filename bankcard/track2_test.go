package bankcard_test

import (
	"strings"
	"testing"
	"time"

	"github.com/cardops/magstripe/bankcard"
	"github.com/stretchr/testify/require"
)

func TestParseTrack2(t *testing.T) {
	track := ";378578692630345=150812114016524100000?"
	t2 := bankcard.ParseTrack2(track)

	require.True(t, t2.HasTrackData())
	require.Equal(t, track, t2.TrackData())
	require.True(t, t2.HasPrimaryAccountNumber())
	require.Equal(t, "378578692630345", t2.PrimaryAccountNumber().AccountNumber())
	require.True(t, t2.HasExpirationDate())
	require.Equal(t, 2015, t2.ExpirationDate().Year())
	require.Equal(t, time.August, t2.ExpirationDate().Month())
	require.True(t, t2.HasServiceCode())
	require.Equal(t, "121", t2.ServiceCode().Code())
	require.Equal(t, "14016524100000", t2.DiscretionaryData())
	require.False(t, t2.ExceedsMaximumLength())
}

func TestParseTrack2_TrailingJunkIgnored(t *testing.T) {
	track := ";4111111111111111=1508101000000?"
	t2 := bankcard.ParseTrack2(track + " junk after the end sentinel")

	require.Equal(t, track, t2.TrackData())
}

func TestParseTrack2_AbsentOptionalFields(t *testing.T) {
	t2 := bankcard.ParseTrack2(";4222222222222==?")

	require.True(t, t2.HasTrackData())
	require.True(t, t2.HasPrimaryAccountNumber())
	require.False(t, t2.HasExpirationDate())
	require.False(t, t2.ExpirationDate().IsPresent())
	require.False(t, t2.HasServiceCode())
	require.False(t, t2.HasDiscretionaryData())
}

func TestParseTrack2_NoMatch(t *testing.T) {
	for _, track := range []string{
		"",
		"  \t",
		"%B4111111111111111^DOE/JOHN^1508101?", // track 1 data
		";=1508101?",                           // missing pan
		";41111111x1111111=1508101?",           // non-digit pan
	} {
		t2 := bankcard.ParseTrack2(track)
		require.False(t, t2.HasTrackData(), track)
		require.False(t, t2.HasPrimaryAccountNumber(), track)
		require.False(t, t2.HasExpirationDate(), track)
		require.False(t, t2.HasServiceCode(), track)
		require.False(t, t2.HasDiscretionaryData(), track)
	}
}

func TestParseTrack2_ExceedsMaximumLength(t *testing.T) {
	// ISO/IEC 7813 caps track 2 at 40 characters
	base := ";1234567890123456789=1508101"
	at40 := base + strings.Repeat("0", 40-len(base)-1) + "?"
	over := base + strings.Repeat("0", 41-len(base)-1) + "?"

	t2 := bankcard.ParseTrack2(at40)
	require.Len(t, t2.TrackData(), 40)
	require.False(t, t2.ExceedsMaximumLength())

	t2 = bankcard.ParseTrack2(over)
	require.Len(t, t2.TrackData(), 41)
	require.True(t, t2.ExceedsMaximumLength())
}
