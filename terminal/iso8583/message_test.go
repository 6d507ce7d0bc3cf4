package iso8583_test

import (
	"testing"

	"github.com/cardops/magstripe/bankcard"
	"github.com/cardops/magstripe/terminal/iso8583"
	"github.com/stretchr/testify/require"
)

func TestBuildAuthorizationRequest(t *testing.T) {
	card := bankcard.NewBankCard(
		"%B4111111111111111^DOE/JOHN^1508101000000?",
		";4111111111111111=1508101000000?",
		"",
	)

	msg, err := iso8583.BuildAuthorizationRequest(card)
	require.NoError(t, err)

	mti, err := msg.GetMTI()
	require.NoError(t, err)
	require.Equal(t, "0100", mti)

	pan, err := msg.GetString(2)
	require.NoError(t, err)
	require.Equal(t, "4111111111111111", pan)

	exp, err := msg.GetString(14)
	require.NoError(t, err)
	require.Equal(t, "1508", exp)

	// DE35/DE45 carry the track payloads without sentinels
	track2, err := msg.GetString(35)
	require.NoError(t, err)
	require.Equal(t, "4111111111111111=1508101000000", track2)

	track1, err := msg.GetString(45)
	require.NoError(t, err)
	require.Equal(t, "B4111111111111111^DOE/JOHN^1508101000000", track1)
}

func TestBuildAuthorizationRequest_Track2Only(t *testing.T) {
	card := bankcard.NewBankCard("", ";4111111111111111=1508101000000?", "")

	msg, err := iso8583.BuildAuthorizationRequest(card)
	require.NoError(t, err)

	track2, err := msg.GetString(35)
	require.NoError(t, err)
	require.Equal(t, "4111111111111111=1508101000000", track2)

	track1, err := msg.GetString(45)
	require.NoError(t, err)
	require.Empty(t, track1)
}

func TestBuildAuthorizationRequest_NoPAN(t *testing.T) {
	card := bankcard.NewBankCard("unreadable", "", "")

	_, err := iso8583.BuildAuthorizationRequest(card)
	require.Error(t, err)
}

func TestCardFromMessage_RoundTrip(t *testing.T) {
	original := bankcard.NewBankCard(
		"%B4111111111111111^DOE/JOHN^1508101000000?",
		";4111111111111111=1508101000000?",
		"",
	)

	msg, err := iso8583.BuildAuthorizationRequest(original)
	require.NoError(t, err)

	card, err := iso8583.CardFromMessage(msg)
	require.NoError(t, err)

	require.True(t, card.Track1().HasTrackData())
	require.Equal(t, original.Track1().TrackData(), card.Track1().TrackData())
	require.True(t, card.Track2().HasTrackData())
	require.Equal(t, original.Track2().TrackData(), card.Track2().TrackData())
	require.Equal(t, "4111111111111111", card.PrimaryAccountNumber().AccountNumber())
	require.Equal(t, "1508", card.ExpirationDate().String())
}
