package bankcard

import (
	"fmt"

	"github.com/cardops/magstripe/internal/cardgen"
)

// PrimaryAccountNumber is the card number embedded in the stripe, 1 to 19
// digits. The zero value represents an absent PAN, which some track formats
// encode with a "^" placeholder.
type PrimaryAccountNumber struct {
	accountNumber string
}

// NewPrimaryAccountNumber wraps a PAN string. An empty string yields the
// absent value. Anything else must be 1-19 decimal digits; a violation is a
// caller defect and fails fast.
func NewPrimaryAccountNumber(accountNumber string) (PrimaryAccountNumber, error) {
	if accountNumber == "" {
		return PrimaryAccountNumber{}, nil
	}
	if !cardgen.IsDigits(accountNumber) {
		return PrimaryAccountNumber{}, fmt.Errorf("pan must contain digits only: %q", accountNumber)
	}
	if len(accountNumber) > 19 {
		return PrimaryAccountNumber{}, fmt.Errorf("pan must be 1..19 digits (got %d)", len(accountNumber))
	}
	return PrimaryAccountNumber{accountNumber: accountNumber}, nil
}

// newAccountNumber is the parser-side constructor; the track grammars only
// ever capture runs of digits, so no validation is repeated here.
func newAccountNumber(digits string) PrimaryAccountNumber {
	return PrimaryAccountNumber{accountNumber: digits}
}

func (p PrimaryAccountNumber) HasPrimaryAccountNumber() bool {
	return p.accountNumber != ""
}

// AccountNumber returns the full PAN. Callers that log must mask it first.
func (p PrimaryAccountNumber) AccountNumber() string {
	return p.accountNumber
}

// PassesLuhnCheck reports whether the PAN ends with a valid Luhn check digit.
func (p PrimaryAccountNumber) PassesLuhnCheck() bool {
	return cardgen.PassesLuhn(p.accountNumber)
}

// Masked returns the PAN with the middle digits obscured, for display or logs.
func (p PrimaryAccountNumber) Masked() string {
	return cardgen.MaskPAN(p.accountNumber)
}

func (p PrimaryAccountNumber) String() string {
	return p.accountNumber
}
