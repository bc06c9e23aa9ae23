package catalog

import (
	"regexp"
	"strconv"
)

// DefaultQuantity is used whenever a supplied quantity is unusable
const DefaultQuantity = 1

var leadingInt = regexp.MustCompile(`^\s*([+-]?\d+)`)

// ParseQuantity reads the integer prefix of raw the way the storefront's
// number inputs are parsed ("3", " 3 ", "3kg" and "3.9" all give 3).
// Empty, non-numeric, out of range and non-positive input gives
// DefaultQuantity.
func ParseQuantity(raw string) int {
	m := leadingInt.FindStringSubmatch(raw)
	if m == nil {
		return DefaultQuantity
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return DefaultQuantity
	}
	return n
}
