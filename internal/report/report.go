// Package report shapes the computed totals into printable documents: a
// paginated PDF and a self-contained HTML body for email.
package report

import (
	"regexp"
	"strings"
	"time"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/pipeline"
)

const (
	ProductName    = "StartupCalc"
	ProductTagline = "Startup Cost Calculator Report"
	FooterCaption  = "StartupCalc - Professional Startup Cost Planning"
	ProductURL     = "https://startupcalc.com"

	fallbackName     = "Your Business"
	fallbackFilename = "Startup_Costs.pdf"
	dateLayout       = "2 January 2006"
)

// SummaryRow is one category line of the summary table.
type SummaryRow struct {
	Title   string
	Amount  int64
	Percent int
}

// LineItem is an item with a positive amount.
type LineItem struct {
	Label  string
	Amount int64
}

// Section is the detail block for one category. Items holds only entries
// with a positive amount; Subtotal covers the whole category.
type Section struct {
	Title    string
	Items    []LineItem
	Subtotal int64
}

// Report is the renderer-neutral content of an export.
type Report struct {
	BusinessName string
	DisplayName  string
	GeneratedOn  time.Time
	Summary      []SummaryRow
	Total        int64
	Sections     []Section // one per category, catalog order
}

// Build computes the report for the given values. It never fails: an empty
// aggregate yields all-zero summary rows.
func Build(businessName string, cat catalog.Catalog, values map[string]int64, now time.Time) Report {
	agg := pipeline.Aggregate(cat.Categories, values)

	rep := Report{
		BusinessName: businessName,
		DisplayName:  DisplayName(businessName),
		GeneratedOn:  now,
		Total:        agg.GrandTotal,
	}

	for i, c := range cat.Categories {
		ct := agg.Categories[i]
		rep.Summary = append(rep.Summary, SummaryRow{
			Title:   ct.Title,
			Amount:  ct.Total,
			Percent: ct.Percent,
		})

		sec := Section{Title: c.Title, Subtotal: ct.Total}
		for _, it := range c.Items {
			if n := values[it.ID]; n > 0 {
				sec.Items = append(sec.Items, LineItem{Label: it.Label, Amount: n})
			}
		}
		rep.Sections = append(rep.Sections, sec)
	}
	return rep
}

// PaginatedSections returns the sections printed in the PDF: those with at
// least one positive item.
func (r Report) PaginatedSections() []Section {
	var out []Section
	for _, s := range r.Sections {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// MarkupSections returns the sections printed in the HTML body: those whose
// subtotal is non-zero.
func (r Report) MarkupSections() []Section {
	var out []Section
	for _, s := range r.Sections {
		if s.Subtotal != 0 {
			out = append(out, s)
		}
	}
	return out
}

// GeneratedOnText is the human date line shown under the heading.
func (r Report) GeneratedOnText() string {
	return "Generated on " + r.GeneratedOn.Format(dateLayout)
}

// Heading is the business title line.
func (r Report) Heading() string {
	return r.DisplayName + " - Startup Costs"
}

// DisplayName returns the trimmed business name or a generic fallback.
func DisplayName(businessName string) string {
	if name := strings.TrimSpace(businessName); name != "" {
		return name
	}
	return fallbackName
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[/\\:*?"<>|]`)
)

// Filename derives the PDF file name from the business name.
// e.g., "Chai Point" -> "Chai_Point_Startup_Costs.pdf"
func Filename(businessName string) string {
	name := strings.TrimSpace(businessName)
	if name == "" {
		return fallbackFilename
	}
	name = unsafeChars.ReplaceAllString(name, "")
	name = whitespaceRun.ReplaceAllString(name, "_")
	if name == "" {
		return fallbackFilename
	}
	return name + "_" + fallbackFilename
}
