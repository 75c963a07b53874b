package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/cli"
)

func TestPDFRender(t *testing.T) {
	r := PDFRenderer{Money: cli.Money{Symbol: "Rs.", Grouping: cli.GroupingIndic}}
	rep := Build("Chai Point", testCatalog(), testValues(), fixedNow)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, rep))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "Chai Point - Startup Costs")
	assert.Contains(t, out, "15,000")
	assert.Contains(t, out, "100%")
}

func TestPDFRender_EmptyReport(t *testing.T) {
	r := NewPDFRenderer(cli.DefaultMoney())
	rep := Build("", testCatalog(), nil, fixedNow)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, rep))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFLayout_Paginates(t *testing.T) {
	var cat catalog.Catalog
	values := map[string]int64{}
	for i := range 20 {
		c := catalog.Category{Title: fmt.Sprintf("Category %d", i)}
		for j := range 4 {
			id := fmt.Sprintf("c%d-i%d", i, j)
			c.Items = append(c.Items, catalog.Item{ID: id, Label: id})
			values[id] = 1000
		}
		cat.Categories = append(cat.Categories, c)
	}

	doc := PDFRenderer{Money: cli.DefaultMoney()}.layout(Build("Big", cat, values, fixedNow))
	require.NoError(t, doc.Error())
	assert.Greater(t, doc.PageCount(), 1)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	assert.Contains(t, buf.String(), fmt.Sprintf("Page 1 of %d", doc.PageCount()))
}

var detailHeadingRe = regexp.MustCompile(`BT [\d.]+ ([\d.]+) Td \(Detailed Cost Breakdown\) Tj ET`)

func TestPDFLayout_DetailHeadingBreaksPage(t *testing.T) {
	// 22 one-item categories fill page 1 with the summary table, leaving
	// the details heading below the break line.
	var cat catalog.Catalog
	values := map[string]int64{}
	for i := range 22 {
		id := fmt.Sprintf("item-%d", i)
		cat.Categories = append(cat.Categories, catalog.Category{
			Title: fmt.Sprintf("Category %d", i),
			Items: []catalog.Item{{ID: id, Label: id}},
		})
		values[id] = 1000
	}

	r := PDFRenderer{Money: cli.DefaultMoney()}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Build("Big", cat, values, fixedNow)))

	m := detailHeadingRe.FindStringSubmatch(buf.String())
	require.NotNil(t, m, "details heading not found")

	yPt, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	const ptPerMM = 72 / 25.4
	yMM := 297 - yPt/ptPerMM

	assert.LessOrEqual(t, yMM, breakThreshold, "heading drawn in the footer area")
	assert.InDelta(t, pageMargin, yMM, 0.1, "heading should open the next page")
}

func TestMarkupRender(t *testing.T) {
	r := MarkupRenderer{Money: cli.DefaultMoney()}
	rep := Build("Chai & Co", testCatalog(), testValues(), fixedNow)

	out, err := r.String(rep)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Chai &amp; Co - Startup Costs")
	assert.Contains(t, out, "Generated on 5 March 2024")
	assert.Contains(t, out, "₹15,000")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, FooterCaption)
	assert.Contains(t, out, `href="https://startupcalc.com"`)

	// Zero categories stay in the summary but get no detail block.
	assert.Contains(t, out, ">Empty</td>")
	assert.Contains(t, out, `data-section="Legal"`)
	assert.NotContains(t, out, `data-section="Empty"`)
	assert.NotContains(t, out, "Notary")
}

func TestMarkupRender_Western(t *testing.T) {
	r := MarkupRenderer{Money: cli.Money{Symbol: "$", Grouping: cli.GroupingWestern}}
	values := map[string]int64{"reg": 1234567}

	out, err := r.String(Build("", testCatalog(), values, fixedNow))
	require.NoError(t, err)
	assert.Contains(t, out, "$1,234,567")
	assert.Contains(t, out, "Your Business - Startup Costs")
}

func TestMarkdownPreview(t *testing.T) {
	html, err := MarkupRenderer{Money: cli.DefaultMoney()}.String(Build("Chai Point", testCatalog(), testValues(), fixedNow))
	require.NoError(t, err)

	out, err := MarkdownPreview(html)
	require.NoError(t, err)

	assert.NotContains(t, out, "<table")
	assert.NotContains(t, out, "\n\n\n")
	assert.Contains(t, out, "Chai Point")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "₹20,000")
	assert.Contains(t, out, "https://startupcalc.com")
}
