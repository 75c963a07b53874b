// Package pipeline computes totals, shares, and the runway projection from
// the catalog and the entered values. Every function here is pure.
package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/model"
)

// ChartPalette is the number of distinct colors the breakdown chart cycles through.
const ChartPalette = 6

var hundred = decimal.NewFromInt(100)

// CategoryTotal sums the values of every item in cat. Missing ids count as 0.
func CategoryTotal(cat catalog.Category, values map[string]int64) int64 {
	var sum int64
	for _, it := range cat.Items {
		sum += values[it.ID]
	}
	return sum
}

// GrandTotal sums CategoryTotal over all categories.
func GrandTotal(cats []catalog.Category, values map[string]int64) int64 {
	var sum int64
	for _, c := range cats {
		sum += CategoryTotal(c, values)
	}
	return sum
}

// Percentage returns round(100*part/total) with halves rounded up, or 0
// when total is 0. The shares of several parts may not add to exactly 100.
func Percentage(part, total int64) int {
	if total == 0 {
		return 0
	}
	pct := decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(total))
	return int(pct.Round(0).IntPart())
}

// Aggregate computes per-category totals and shares in catalog order.
func Aggregate(cats []catalog.Category, values map[string]int64) model.Aggregate {
	agg := model.Aggregate{
		Categories: make([]model.CategoryTotal, 0, len(cats)),
	}
	for _, c := range cats {
		total := CategoryTotal(c, values)
		agg.GrandTotal += total
		agg.Categories = append(agg.Categories, model.CategoryTotal{
			Title: c.Title,
			Kind:  c.Kind,
			Total: total,
		})
	}
	for i := range agg.Categories {
		agg.Categories[i].Percent = Percentage(agg.Categories[i].Total, agg.GrandTotal)
	}
	return agg
}

// ChartSlices returns the non-zero categories of agg with palette colors
// assigned by catalog position. An empty result means there is nothing to chart.
func ChartSlices(agg model.Aggregate) []model.ChartSlice {
	var slices []model.ChartSlice
	for i, c := range agg.Categories {
		if c.Total <= 0 {
			continue
		}
		slices = append(slices, model.ChartSlice{
			Title:   c.Title,
			Value:   c.Total,
			Percent: c.Percent,
			Color:   i % ChartPalette,
		})
	}
	return slices
}
