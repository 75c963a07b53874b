// Package store holds the per-session amounts entered for each catalog item.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/theirongolddev/startupcalc/internal/catalog"
)

// ErrUnknownItem is returned for writes to an id the catalog does not define.
var ErrUnknownItem = errors.New("unknown item id")

// Limits bounds every stored amount.
type Limits struct {
	Min int64 `toml:"min"`
	Max int64 `toml:"max"`
}

// DefaultLimits returns the [0, 10,000,000] range used by the calculator.
func DefaultLimits() Limits {
	return Limits{Min: 0, Max: 10_000_000}
}

// Clamp saturates n into [Min, Max].
func (l Limits) Clamp(n int64) int64 {
	if n < l.Min {
		return l.Min
	}
	if n > l.Max {
		return l.Max
	}
	return n
}

// Values is a fixed-schema map from item id to amount. The key set is the
// catalog's id set and never grows after New.
type Values struct {
	cat     catalog.Catalog
	limits  Limits
	amounts map[string]int64
	steps   map[string]int64
}

// New creates a store initialized from catalog defaults.
func New(cat catalog.Catalog, limits Limits) *Values {
	if limits.Max < limits.Min {
		limits.Max = limits.Min
	}
	v := &Values{
		cat:     cat,
		limits:  limits,
		amounts: make(map[string]int64, cat.ItemCount()),
		steps:   make(map[string]int64, cat.ItemCount()),
	}
	for _, c := range cat.Categories {
		for _, it := range c.Items {
			v.steps[it.ID] = it.StepOrDefault()
		}
	}
	v.Reset()
	return v
}

// Reset restores every item to its catalog default.
func (v *Values) Reset() {
	for _, c := range v.cat.Categories {
		for _, it := range c.Items {
			v.amounts[it.ID] = v.limits.Clamp(it.DefaultValue)
		}
	}
}

// Limits returns the bounds applied on every write.
func (v *Values) Limits() Limits { return v.limits }

// Catalog returns the catalog the store was built from.
func (v *Values) Catalog() catalog.Catalog { return v.cat }

// Get returns the amount for id, or 0 for unknown ids.
func (v *Values) Get(id string) int64 {
	return v.amounts[id]
}

// Set parses raw user input and stores it. Every non-digit character is
// dropped; an empty result counts as 0. The stored amount is returned.
func (v *Values) Set(id, raw string) (int64, error) {
	return v.SetAmount(id, v.parseDigits(raw))
}

// SetAmount clamps n and stores it under id.
func (v *Values) SetAmount(id string, n int64) (int64, error) {
	if _, ok := v.amounts[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	n = v.limits.Clamp(n)
	v.amounts[id] = n
	return n, nil
}

// Increment adds the item's step, saturating at Max.
func (v *Values) Increment(id string) (int64, error) {
	cur, ok := v.amounts[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	step := v.steps[id]
	if cur > v.limits.Max-step {
		return v.SetAmount(id, v.limits.Max)
	}
	return v.SetAmount(id, cur+step)
}

// Decrement subtracts the item's step, saturating at Min.
func (v *Values) Decrement(id string) (int64, error) {
	cur, ok := v.amounts[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	step := v.steps[id]
	if cur < v.limits.Min+step {
		return v.SetAmount(id, v.limits.Min)
	}
	return v.SetAmount(id, cur-step)
}

// Snapshot returns a copy of the current amounts for read-only consumers.
func (v *Values) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(v.amounts))
	for k, n := range v.amounts {
		out[k] = n
	}
	return out
}

// parseDigits keeps only ASCII digits. Inputs too long for int64 saturate
// at Max so the later clamp still yields the upper bound.
func (v *Values) parseDigits(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return v.limits.Max
	}
	return n
}
