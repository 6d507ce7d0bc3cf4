// Package iso8583 bridges decoded magnetic stripe data and ISO 8583
// authorization messages: it populates the track-data elements of an
// outbound request from a parsed card, and rebuilds parseable track strings
// from an inbound message.
package iso8583

import (
	"fmt"

	"github.com/cardops/magstripe/bankcard"
	moov8583 "github.com/moov-io/iso8583"
	"github.com/moov-io/iso8583/specs"
)

const (
	mtiAuthorizationRequest = "0100"

	fieldPAN            = 2
	fieldExpirationDate = 14
	fieldTrack2Data     = 35
	fieldTrack1Data     = 45
)

// BuildAuthorizationRequest builds an 0100 authorization request carrying
// the card's PAN, expiration date, and the raw track payloads. Per ISO 8583,
// DE35 and DE45 carry the track data without sentinels or LRC.
func BuildAuthorizationRequest(card bankcard.BankCard) (*moov8583.Message, error) {
	if !card.HasPrimaryAccountNumber() {
		return nil, fmt.Errorf("card has no primary account number")
	}

	msg := moov8583.NewMessage(specs.Spec87ASCII)

	msg.MTI(mtiAuthorizationRequest)
	if err := msg.Field(fieldPAN, card.PrimaryAccountNumber().AccountNumber()); err != nil {
		return nil, fmt.Errorf("setting pan: %w", err)
	}
	if card.HasExpirationDate() {
		if err := msg.Field(fieldExpirationDate, card.ExpirationDate().String()); err != nil {
			return nil, fmt.Errorf("setting expiration date: %w", err)
		}
	}
	if card.Track2().HasTrackData() {
		if err := msg.Field(fieldTrack2Data, stripSentinels(card.Track2().TrackData())); err != nil {
			return nil, fmt.Errorf("setting track 2 data: %w", err)
		}
	}
	if card.Track1().HasTrackData() {
		if err := msg.Field(fieldTrack1Data, stripSentinels(card.Track1().TrackData())); err != nil {
			return nil, fmt.Errorf("setting track 1 data: %w", err)
		}
	}

	return msg, nil
}

// CardFromMessage reassembles the sentinel-delimited track strings from an
// inbound message's DE35/DE45 and parses them.
func CardFromMessage(msg *moov8583.Message) (bankcard.BankCard, error) {
	track1Data, err := msg.GetString(fieldTrack1Data)
	if err != nil {
		return bankcard.BankCard{}, fmt.Errorf("getting track 1 data: %w", err)
	}
	track2Data, err := msg.GetString(fieldTrack2Data)
	if err != nil {
		return bankcard.BankCard{}, fmt.Errorf("getting track 2 data: %w", err)
	}

	var track1, track2 string
	if track1Data != "" {
		track1 = "%" + track1Data + "?"
	}
	if track2Data != "" {
		track2 = ";" + track2Data + "?"
	}

	return bankcard.NewBankCard(track1, track2, ""), nil
}

// stripSentinels drops the start and end sentinel of a matched track span.
func stripSentinels(trackData string) string {
	if len(trackData) < 2 {
		return trackData
	}
	return trackData[1 : len(trackData)-1]
}
