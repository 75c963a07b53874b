package pipeline

import (
	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/model"
)

// RunwayMonths is how many months of recurring cost the runway covers.
const RunwayMonths = 6

// Runway splits costs by category kind. Untagged categories are left out of
// both buckets but still count toward GrandTotal.
func Runway(cats []catalog.Category, values map[string]int64) model.Runway {
	var r model.Runway
	for _, c := range cats {
		switch c.Kind {
		case catalog.KindOneTime:
			r.OneTime += CategoryTotal(c, values)
		case catalog.KindRecurring:
			r.Monthly += CategoryTotal(c, values)
		}
	}
	r.SixMonthProjection = r.Monthly * RunwayMonths
	r.Total = r.OneTime + r.SixMonthProjection
	return r
}

// UntaggedCategories lists titles that the runway view ignores.
func UntaggedCategories(cats []catalog.Category) []string {
	var out []string
	for _, c := range cats {
		if c.Kind == catalog.KindNone {
			out = append(out, c.Title)
		}
	}
	return out
}
