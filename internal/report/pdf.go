package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/theirongolddev/startupcalc/internal/cli"
)

// Layout constants in millimetres on an A4 portrait page.
const (
	pageMargin     = 20.0
	bandHeight     = 40.0
	summaryTop     = 80.0
	breakThreshold = 260.0 // start a new page when a section would begin below this
	rowHeight      = 8.0
	footerOffset   = 10.0
)

type rgb struct{ r, g, b int }

var (
	colorPrimary   = rgb{36, 94, 79}    // #245e4f
	colorSecondary = rgb{122, 201, 167} // #7ac9a7
	colorFootFill  = rgb{240, 240, 240}
	colorBodyText  = rgb{51, 51, 51}
	colorMuted     = rgb{100, 100, 100}
	colorGrid      = rgb{200, 200, 200}
	colorWhite     = rgb{255, 255, 255}
)

// PDFRenderer lays out a Report as a paginated A4 document.
type PDFRenderer struct {
	Money    cli.Money
	Compress bool
}

// NewPDFRenderer returns a renderer with stream compression enabled.
func NewPDFRenderer(m cli.Money) PDFRenderer {
	return PDFRenderer{Money: m, Compress: true}
}

// Render writes the PDF for rep to w.
func (r PDFRenderer) Render(w io.Writer, rep Report) error {
	pdf := r.layout(rep)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

type pdfDoc struct {
	*fpdf.Fpdf
	tr    func(string) string
	money cli.Money
}

type rowKind int

const (
	rowHead rowKind = iota
	rowBody
	rowFoot
)

type column struct {
	width float64
	align string
}

func (r PDFRenderer) layout(rep Report) *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	doc := &pdfDoc{
		Fpdf:  pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		money: r.Money,
	}

	pdf.SetCompression(r.Compress)
	pdf.SetCreationDate(rep.GeneratedOn)
	pdf.SetTitle(rep.Heading(), true)
	pdf.SetCreator(ProductName, false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AliasNbPages("{nb}")
	pdf.SetFooterFunc(doc.footer)

	pdf.AddPage()
	doc.titleBand(rep)
	doc.summaryTable(rep)
	doc.details(rep)

	return doc
}

func (d *pdfDoc) setText(c rgb) { d.SetTextColor(c.r, c.g, c.b) }
func (d *pdfDoc) setFill(c rgb) { d.SetFillColor(c.r, c.g, c.b) }
func (d *pdfDoc) setDraw(c rgb) { d.SetDrawColor(c.r, c.g, c.b) }

func (d *pdfDoc) text(x, y float64, s string) { d.Text(x, y, d.tr(s)) }

func (d *pdfDoc) titleBand(rep Report) {
	pageW, _ := d.GetPageSize()

	d.setFill(colorPrimary)
	d.Rect(0, 0, pageW, bandHeight, "F")

	d.setText(colorWhite)
	d.SetFont("Helvetica", "B", 24)
	d.text(pageMargin, 20, ProductName)
	d.SetFont("Helvetica", "", 12)
	d.text(pageMargin, 30, ProductTagline)

	d.setText(colorPrimary)
	d.SetFont("Helvetica", "B", 18)
	d.text(pageMargin, 55, rep.Heading())

	d.setText(colorMuted)
	d.SetFont("Helvetica", "", 10)
	d.text(pageMargin, 62, rep.GeneratedOnText())

	d.setText(colorPrimary)
	d.SetFont("Helvetica", "B", 14)
	d.text(pageMargin, 75, "Cost Summary")
}

func (d *pdfDoc) summaryTable(rep Report) {
	cols := []column{{90, "L"}, {45, "R"}, {35, "R"}}

	d.SetXY(pageMargin, summaryTop)
	d.row(cols, rowHead, colorPrimary, "Category", fmt.Sprintf("Amount (%s)", d.money.Symbol), "Percentage")
	for _, s := range rep.Summary {
		d.row(cols, rowBody, colorPrimary, s.Title, d.money.Number(s.Amount), cli.FormatPercent(s.Percent))
	}
	// The total is always printed as 100% regardless of rounding drift above.
	d.row(cols, rowFoot, colorPrimary, "TOTAL", d.money.Number(rep.Total), "100%")
}

func (d *pdfDoc) details(rep Report) {
	sections := rep.PaginatedSections()
	if len(sections) == 0 {
		return
	}

	y := d.breakBelow(d.GetY() + 15)
	d.setText(colorPrimary)
	d.SetFont("Helvetica", "B", 14)
	d.text(pageMargin, y, "Detailed Cost Breakdown")
	y += 5

	cols := []column{{120, "L"}, {50, "R"}}
	for _, sec := range sections {
		y = d.breakBelow(y + 10)

		d.setText(colorPrimary)
		d.SetFont("Helvetica", "B", 12)
		d.text(pageMargin, y, sec.Title)

		d.SetXY(pageMargin, y+5)
		d.row(cols, rowHead, colorSecondary, "Item", fmt.Sprintf("Amount (%s)", d.money.Symbol))
		for _, it := range sec.Items {
			d.row(cols, rowBody, colorSecondary, it.Label, d.money.Number(it.Amount))
		}
		d.row(cols, rowFoot, colorSecondary, "Subtotal", d.money.Number(sec.Subtotal))

		y = d.GetY()
	}
}

// breakBelow starts a new page when y is past breakThreshold and returns
// the y to draw at.
func (d *pdfDoc) breakBelow(y float64) float64 {
	if y > breakThreshold {
		d.AddPage()
		return pageMargin
	}
	return y
}

// row draws one grid row. Cells past len(cols) are ignored.
func (d *pdfDoc) row(cols []column, kind rowKind, head rgb, cells ...string) {
	d.setDraw(colorGrid)
	fill := false

	switch kind {
	case rowHead:
		fill = true
		d.setFill(head)
		d.setText(colorWhite)
		d.SetFont("Helvetica", "B", 10)
	case rowFoot:
		fill = true
		d.setFill(colorFootFill)
		d.setText(colorPrimary)
		d.SetFont("Helvetica", "B", 10)
	default:
		d.setText(colorBodyText)
		d.SetFont("Helvetica", "", 10)
	}

	for i, c := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		align := c.align
		if kind == rowHead && i == 0 {
			align = "L"
		}
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		d.CellFormat(c.width, rowHeight, d.tr(cell), "1", ln, align, fill, 0, "")
	}
}

func (d *pdfDoc) footer() {
	pageW, pageH := d.GetPageSize()

	d.setText(colorMuted)
	d.SetFont("Helvetica", "", 10)
	d.text(pageMargin, pageH-footerOffset, FooterCaption)
	d.text(pageW-40, pageH-footerOffset, fmt.Sprintf("Page %d of {nb}", d.PageNo()))
}
