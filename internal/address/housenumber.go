package address

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidHouseNumber is returned when a house number string cannot be split.
var ErrInvalidHouseNumber = errors.New("invalid house number")

var houseNumberRe = regexp.MustCompile(`^(\d+)([A-Za-z]*)$`)

// SplitHouseNumber is the persisted shape of a free-form house number string:
// a leading digit run and an optional trailing alphabetic suffix.
type SplitHouseNumber struct {
	// Digits is the original digit run, kept verbatim so inputs like "007"
	// survive a split/merge round trip.
	Digits string
	// Numeric is the parsed value of Digits.
	Numeric int
	// Suffix is the trailing alphabetic run, empty if none.
	Suffix string
}

// Split parses a house number string such as "21", "21a" or "21ab" into its
// digit run and suffix. The digit run must be non-empty and nothing may follow
// the suffix.
func Split(houseNumber string) (SplitHouseNumber, error) {
	m := houseNumberRe.FindStringSubmatch(houseNumber)
	if m == nil {
		return SplitHouseNumber{}, fmt.Errorf("%w: %q", ErrInvalidHouseNumber, houseNumber)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit runs longer than an int can hold are rejected rather than truncated.
		return SplitHouseNumber{}, fmt.Errorf("%w: %q: %v", ErrInvalidHouseNumber, houseNumber, err)
	}

	return SplitHouseNumber{Digits: m[1], Numeric: n, Suffix: m[2]}, nil
}

// Merge reconstructs the house number string from its split form. The digit
// run is emitted verbatim; it is never reformatted through the numeric value.
func Merge(v SplitHouseNumber) string {
	if v.Digits != "" {
		return v.Digits + v.Suffix
	}
	return strconv.Itoa(v.Numeric) + v.Suffix
}
