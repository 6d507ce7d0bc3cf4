package bankcard_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/cardops/magstripe/bankcard"
	"github.com/cardops/magstripe/internal/cardgen"
	"github.com/cardops/magstripe/internal/expiry"
	"github.com/stretchr/testify/require"
)

// Track strings fabricated from a generated PAN and expiry must match their
// own grammars and decode back to the same field values.
func TestGeneratedTracksParse(t *testing.T) {
	for _, totalLen := range []int{13, 16, 19} {
		pan, err := cardgen.GeneratePAN("421234", totalLen)
		require.NoError(t, err)
		yymm := expiry.YYMM(time.Now(), expiry.YearsForProduct("debit", 0))

		track1 := fmt.Sprintf("%%B%s^DOE/JOHN^%s101000000?", pan, yymm)
		track2 := fmt.Sprintf(";%s=%s101000000?", pan, yymm)

		card := bankcard.NewBankCard(track1, track2, "")

		require.True(t, card.Track1().HasTrackData(), track1)
		require.True(t, card.Track2().HasTrackData(), track2)
		require.Equal(t, pan, card.Track1().PrimaryAccountNumber().AccountNumber())
		require.Equal(t, pan, card.Track2().PrimaryAccountNumber().AccountNumber())
		require.True(t, card.PrimaryAccountNumber().PassesLuhnCheck())
		require.Equal(t, yymm, card.ExpirationDate().String())
		require.Equal(t, "101", card.ServiceCode().Code())
	}
}
