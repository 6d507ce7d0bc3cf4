package decoder

import (
	"time"

	"github.com/cardops/magstripe/bankcard"
	"github.com/cardops/magstripe/decoder/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service decodes raw swipe data into structured card fields. It is
// stateless; every decode is a pure parse of the request payload.
type Service struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
		now:    time.Now,
	}
}

// Decode parses the request's swipe data. Unreadable tracks are a normal
// outcome and come back as unmatched results, never as an error.
func (s *Service) Decode(req models.DecodeRequest) *models.DecodeResponse {
	var card bankcard.BankCard
	if req.Track1 != "" || req.Track2 != "" || req.Track3 != "" {
		card = bankcard.NewBankCard(req.Track1, req.Track2, req.Track3)
	} else {
		card = bankcard.FromSwipe(req.Swipe)
	}

	resp := &models.DecodeResponse{
		SwipeID: uuid.New().String(),
		Track1:  trackResult(card.Track1()),
		Track2:  trackResult(card.Track2()),
		Track3:  trackResult(card.Track3()),
	}

	if card.HasPrimaryAccountNumber() {
		pan := card.PrimaryAccountNumber()
		resp.Card.PrimaryAccountNumber = pan.AccountNumber()
		resp.Card.PassesLuhnCheck = pan.PassesLuhnCheck()
	}
	if card.HasName() {
		resp.Card.Name = card.Name().Name()
	}
	if card.HasExpirationDate() {
		exp := card.ExpirationDate()
		resp.Card.ExpirationDate = exp.String()
		resp.Card.Expired = exp.IsExpiredAt(s.now())
	}
	if card.HasServiceCode() {
		sc := card.ServiceCode()
		resp.Card.ServiceCode = sc.Code()
		resp.Card.AllowedServices = sc.AllowedServices()
	}

	// full PANs never reach the log
	s.logger.Info("decoded swipe",
		slog.String("swipe_id", resp.SwipeID),
		slog.String("pan", card.PrimaryAccountNumber().Masked()),
		slog.Bool("track1", resp.Track1.Matched),
		slog.Bool("track2", resp.Track2.Matched),
		slog.Bool("track3", resp.Track3.Matched),
	)

	return resp
}

func trackResult(t bankcard.Track) models.TrackResult {
	return models.TrackResult{
		Matched:              t.HasTrackData(),
		TrackData:            t.TrackData(),
		DiscretionaryData:    t.DiscretionaryData(),
		ExceedsMaximumLength: t.ExceedsMaximumLength(),
	}
}
