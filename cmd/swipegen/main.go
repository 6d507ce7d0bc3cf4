// swipegen fabricates well-formed magnetic stripe track data for terminal
// and parser testing: a Luhn-valid PAN from a configurable BIN, an expiry
// per card product, and matching Track 1 / Track 2 strings.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cardops/magstripe/bankcard"
	"github.com/cardops/magstripe/internal/cardgen"
	"github.com/cardops/magstripe/internal/expiry"
)

var (
	flagBIN         = flag.String("bin", "421234", "6/8/9-digit BIN prefix")
	flagLen         = flag.Int("len", 16, "total PAN length (13-19)")
	flagName        = flag.String("name", "DOE/JOHN", "cardholder name for track 1")
	flagYears       = flag.Int("years", 0, "override validity years (if > 0)")
	flagProduct     = flag.String("product", "debit", "card product: credit|debit")
	flagServiceCode = flag.String("service-code", "101", "3-digit service code")
	flagVerbose     = flag.Bool("verbose", false, "print full PAN (otherwise masked)")
)

func main() {
	flag.Parse()
	must(cardgen.ValidateBIN(*flagBIN))
	if _, err := bankcard.NewServiceCode(*flagServiceCode); err != nil {
		fail("%v", err)
	}
	name := normalizeCardName(*flagName)
	if _, err := bankcard.NewName(name); err != nil {
		fail("%v", err)
	}

	pan := must1(cardgen.GeneratePAN(*flagBIN, *flagLen))
	years := expiry.YearsForProduct(*flagProduct, *flagYears)
	yymm := expiry.YYMM(time.Now(), years)

	track1 := fmt.Sprintf("%%B%s^%s^%s%s000000?", pan, name, yymm, *flagServiceCode)
	track2 := fmt.Sprintf(";%s=%s%s000000?", pan, yymm, *flagServiceCode)

	// generated data must parse with the library's own grammars
	card := bankcard.NewBankCard(track1, track2, "")
	if !card.Track1().HasTrackData() || !card.Track2().HasTrackData() {
		fail("generated track data does not match the track grammars")
	}

	// the track lines embed the PAN too, so they are masked by default
	printPAN := cardgen.MaskPAN(pan)
	printTrack1 := strings.Replace(track1, pan, printPAN, 1)
	printTrack2 := strings.Replace(track2, pan, printPAN, 1)
	if *flagVerbose {
		printPAN = pan + "   (WARNING: printing full PAN)"
		printTrack1 = track1
		printTrack2 = track2
	}

	fmt.Printf("PAN: %s\nEXP(card-face): %s  EXP(stripe): %s\n",
		printPAN, expiry.CardFace(time.Now(), years), yymm)
	fmt.Printf("Track 1: %s\nTrack 2: %s\n", printTrack1, printTrack2)
}

func normalizeCardName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	normalized := strings.Join(strings.Fields(trimmed), " ")
	up := strings.ToUpper(normalized)
	if len(up) > 26 {
		return up[:26]
	}
	return up
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func must1[T any](v T, err error) T {
	if err != nil {
		fail("%v", err)
	}
	return v
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
