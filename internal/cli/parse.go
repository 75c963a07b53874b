package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("empty amount")

// amountSuffixes maps compact suffixes to multipliers, longest first so
// "cr" wins over a bare letter.
var amountSuffixes = []struct {
	suffix string
	mult   int64
}{
	{"cr", 10_000_000},
	{"l", 100_000},
	{"k", 1_000},
	{"m", 1_000_000},
	{"b", 1_000_000_000},
}

// ParseAmount reads a human amount such as "45000", "₹1,50,000", "1.5L",
// "2Cr" or "50k". Fractions below one unit are truncated.
func ParseAmount(s string) (int64, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ',' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
	clean = strings.TrimLeftFunc(clean, func(r rune) bool {
		return r != '.' && r != '-' && !unicode.IsDigit(r)
	})
	if clean == "" {
		return 0, errEmptyAmount
	}

	mult := int64(1)
	for _, sfx := range amountSuffixes {
		if strings.HasSuffix(clean, sfx.suffix) {
			clean = strings.TrimSuffix(clean, sfx.suffix)
			mult = sfx.mult
			break
		}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d.Mul(decimal.NewFromInt(mult)).IntPart(), nil
}
