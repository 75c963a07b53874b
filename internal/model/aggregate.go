// Package model holds the derived views computed from the catalog and the entered values.
package model

import "github.com/theirongolddev/startupcalc/internal/catalog"

// CategoryTotal is one category's share of the grand total.
type CategoryTotal struct {
	Title   string
	Kind    catalog.Kind
	Total   int64
	Percent int // 0-100, rounded
}

// Aggregate holds per-category totals in catalog order plus the grand total.
type Aggregate struct {
	Categories []CategoryTotal
	GrandTotal int64
}

// IsEmpty reports whether nothing has been entered.
func (a Aggregate) IsEmpty() bool {
	return a.GrandTotal == 0
}

// ChartSlice is a non-zero category prepared for the breakdown chart.
type ChartSlice struct {
	Title   string
	Value   int64
	Percent int
	Color   int // index into the chart palette
}
