// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Grouping selects how digits are grouped in amounts.
type Grouping string

const (
	// GroupingWestern groups by thousands: 1,234,567.
	GroupingWestern Grouping = "western"
	// GroupingIndic groups the last three digits, then pairs: 12,34,567.
	GroupingIndic Grouping = "indic"
)

// ParseGrouping maps a config or flag value to a Grouping, defaulting to indic.
func ParseGrouping(s string) (Grouping, error) {
	switch Grouping(strings.ToLower(strings.TrimSpace(s))) {
	case "", GroupingIndic:
		return GroupingIndic, nil
	case GroupingWestern:
		return GroupingWestern, nil
	}
	return "", fmt.Errorf("unknown grouping %q (want western or indic)", s)
}

// Money carries the currency formatting settings passed to every renderer.
type Money struct {
	Symbol   string
	Grouping Grouping
}

// DefaultMoney is rupees with Indian digit grouping.
func DefaultMoney() Money {
	return Money{Symbol: "₹", Grouping: GroupingIndic}
}

// Format renders n with the currency symbol prefix, e.g. "₹12,34,567".
func (m Money) Format(n int64) string {
	return m.Symbol + m.Number(n)
}

// Number renders n with grouping separators and no symbol.
func (m Money) Number(n int64) string {
	if m.Grouping == GroupingWestern {
		return humanize.Comma(n)
	}
	return FormatIndic(n)
}

// Compact renders n as a short axis label: "₹950", "₹50K", "₹12L", "₹1.5Cr"
// for indic grouping, "₹1.2M" for western.
func (m Money) Compact(n int64) string {
	abs := magnitude(n)
	sign := ""
	if n < 0 {
		sign = "-"
	}

	type unit struct {
		size   uint64
		suffix string
	}
	units := []unit{{1_000_000_000, "B"}, {1_000_000, "M"}, {1_000, "K"}}
	if m.Grouping != GroupingWestern {
		units = []unit{{10_000_000, "Cr"}, {100_000, "L"}, {1_000, "K"}}
	}

	for _, u := range units {
		if abs >= u.size {
			return sign + m.Symbol + trimZero(float64(abs)/float64(u.size)) + u.suffix
		}
	}
	return sign + m.Symbol + strconv.FormatUint(abs, 10)
}

func trimZero(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatIndic groups digits the Indian way: the last three digits, then
// groups of two. e.g., 1234567 -> "12,34,567"
func FormatIndic(n int64) string {
	s := strconv.FormatUint(magnitude(n), 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		s = strings.Join(parts, ",") + "," + tail
	}
	if n < 0 {
		return "-" + s
	}
	return s
}

// magnitude returns |n| without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// FormatNumber adds thousands separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a whole-number percentage.
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}
