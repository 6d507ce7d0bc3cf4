package bankcard

import (
	"fmt"

	"github.com/cardops/magstripe/internal/cardgen"
)

// ServiceCode is the 3-digit code indicating usage restrictions and
// authorization requirements for the card. The zero value represents an
// absent service code.
type ServiceCode struct {
	code string
}

// NewServiceCode wraps a service code. An empty string yields the absent
// value; anything else must be exactly 3 decimal digits.
func NewServiceCode(code string) (ServiceCode, error) {
	if code == "" {
		return ServiceCode{}, nil
	}
	if len(code) != 3 || !cardgen.IsDigits(code) {
		return ServiceCode{}, fmt.Errorf("service code must be 3 digits: %q", code)
	}
	return ServiceCode{code: code}, nil
}

// parseServiceCode is the parser-side constructor; placeholder characters
// mean the field was absent on the stripe.
func parseServiceCode(raw string) ServiceCode {
	switch raw {
	case "", "^", "=":
		return ServiceCode{}
	}
	return ServiceCode{code: raw}
}

func (s ServiceCode) HasServiceCode() bool {
	return s.code != ""
}

func (s ServiceCode) Code() string {
	return s.code
}

func (s ServiceCode) String() string {
	return s.code
}

var interchangeRules = map[byte]string{
	'1': "international interchange",
	'2': "international interchange, integrated circuit where feasible",
	'5': "national interchange only",
	'6': "national interchange only, integrated circuit where feasible",
	'7': "no interchange except bilateral agreements",
	'9': "test",
}

var authorizationProcessing = map[byte]string{
	'0': "normal",
	'2': "by issuer only",
	'4': "by issuer only unless a bilateral agreement applies",
}

var allowedServices = map[byte]string{
	'0': "no restrictions, PIN required",
	'1': "no restrictions",
	'2': "goods and services only",
	'3': "ATM only, PIN required",
	'4': "cash only",
	'5': "goods and services only, PIN required",
	'6': "no restrictions, PIN required where feasible",
	'7': "goods and services only, PIN required where feasible",
}

// InterchangeRules describes the first digit of the service code.
func (s ServiceCode) InterchangeRules() string {
	return s.describe(0, interchangeRules)
}

// AuthorizationProcessing describes the second digit of the service code.
func (s ServiceCode) AuthorizationProcessing() string {
	return s.describe(1, authorizationProcessing)
}

// AllowedServices describes the third digit of the service code.
func (s ServiceCode) AllowedServices() string {
	return s.describe(2, allowedServices)
}

func (s ServiceCode) describe(pos int, table map[byte]string) string {
	if len(s.code) != 3 {
		return "unknown"
	}
	if desc, ok := table[s.code[pos]]; ok {
		return desc
	}
	return "unknown"
}
