package bankcard

import (
	"fmt"
	"strings"
)

// Name is the cardholder name field from Track 1, 2 to 26 characters. It may
// itself encode "surname/first name" with a slash, but it is not split
// further here. The zero value represents an absent name.
type Name struct {
	name string
}

// NewName wraps a cardholder name. An empty string yields the absent value;
// anything else must be 2-26 characters and must not contain the "^" field
// separator.
func NewName(name string) (Name, error) {
	if name == "" {
		return Name{}, nil
	}
	if n := len([]rune(name)); n < 2 || n > 26 {
		return Name{}, fmt.Errorf("name must be 2..26 characters (got %d)", n)
	}
	if strings.ContainsRune(name, '^') {
		return Name{}, fmt.Errorf("name must not contain the field separator")
	}
	return Name{name: name}, nil
}

// newName is the parser-side constructor; the track grammar already bounds
// the field.
func newName(name string) Name {
	return Name{name: name}
}

// HasName reports whether the field carries anything beyond padding.
func (n Name) HasName() bool {
	return !isBlank(n.name)
}

// Name returns the field verbatim, including any encoding padding.
func (n Name) Name() string {
	return n.name
}

func (n Name) String() string {
	return n.name
}
