package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/theirongolddev/startupcalc/internal/cli"
)

// MarkupRenderer renders a Report as a self-contained, inline-styled HTML
// document suitable for an email body.
type MarkupRenderer struct {
	Money cli.Money
}

type markupData struct {
	Report
	Sections []Section
	Tagline  string
	Footer   string
	URL      string
	Product  string
}

// money is rebound per render to the renderer's formatter.
var markupTmpl = template.Must(template.New("email").Funcs(template.FuncMap{
	"pct":   cli.FormatPercent,
	"money": cli.DefaultMoney().Format,
}).Parse(markupSource))

// Render writes the HTML document for rep to w.
func (r MarkupRenderer) Render(w io.Writer, rep Report) error {
	tmpl, err := markupTmpl.Clone()
	if err != nil {
		return fmt.Errorf("cloning template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{"money": r.Money.Format})

	data := markupData{
		Report:   rep,
		Sections: rep.MarkupSections(),
		Tagline:  ProductTagline,
		Footer:   FooterCaption,
		URL:      ProductURL,
		Product:  ProductName,
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering markup: %w", err)
	}
	return nil
}

// String renders rep and returns the document.
func (r MarkupRenderer) String(rep Report) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, rep); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const markupSource = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Startup Cost Breakdown - {{.DisplayName}}</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #245e4f; color: white; padding: 20px; text-align: center; margin-bottom: 20px;">
    <h1 style="margin: 0; font-size: 24px;">{{.Product}}</h1>
    <p style="margin: 5px 0 0;">{{.Tagline}}</p>
  </div>

  <div style="background-color: #f8f8f8; border-left: 4px solid #245e4f; padding: 15px; margin-bottom: 20px;">
    <h2 style="color: #245e4f; margin-top: 0;">{{.Heading}}</h2>
    <p style="color: #666; margin-bottom: 0;">{{.GeneratedOnText}}</p>
  </div>

  <div style="margin-bottom: 30px;">
    <h2 style="color: #245e4f; border-bottom: 2px solid #e9c46a; padding-bottom: 5px;">Cost Summary</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr>
          <th style="text-align: left; padding: 10px; background-color: #245e4f; color: white;">Category</th>
          <th style="text-align: right; padding: 10px; background-color: #245e4f; color: white;">Amount</th>
          <th style="text-align: right; padding: 10px; background-color: #245e4f; color: white;">Percentage</th>
        </tr>
      </thead>
      <tbody>
{{- range .Summary}}
        <tr>
          <td style="padding: 10px; border-bottom: 1px solid #e2e8f0;">{{.Title}}</td>
          <td style="padding: 10px; border-bottom: 1px solid #e2e8f0; text-align: right;">{{money .Amount}}</td>
          <td style="padding: 10px; border-bottom: 1px solid #e2e8f0; text-align: right;">{{pct .Percent}}</td>
        </tr>
{{- end}}
        <tr>
          <td style="padding: 10px; font-weight: bold; background-color: #f8f9fa;">TOTAL</td>
          <td style="padding: 10px; font-weight: bold; background-color: #f8f9fa; text-align: right;">{{money .Total}}</td>
          <td style="padding: 10px; font-weight: bold; background-color: #f8f9fa; text-align: right;">100%</td>
        </tr>
      </tbody>
    </table>
  </div>

  <div>
    <h2 style="color: #245e4f; border-bottom: 2px solid #e9c46a; padding-bottom: 5px;">Detailed Cost Breakdown</h2>
{{- range .Sections}}
    <div style="margin-bottom: 20px;" data-section="{{.Title}}">
      <h3 style="color: #245e4f; margin-bottom: 10px;">{{.Title}}</h3>
      <table style="width: 100%; border-collapse: collapse;">
        <thead>
          <tr>
            <th style="text-align: left; padding: 8px; background-color: #7ac9a7; color: white;">Item</th>
            <th style="text-align: right; padding: 8px; background-color: #7ac9a7; color: white;">Amount</th>
          </tr>
        </thead>
        <tbody>
{{- range .Items}}
          <tr>
            <td style="padding: 8px; border-bottom: 1px solid #e2e8f0;">{{.Label}}</td>
            <td style="padding: 8px; border-bottom: 1px solid #e2e8f0; text-align: right;">{{money .Amount}}</td>
          </tr>
{{- end}}
          <tr>
            <td style="padding: 8px; font-weight: bold; background-color: #f8f9fa;">Subtotal</td>
            <td style="padding: 8px; font-weight: bold; background-color: #f8f9fa; text-align: right;">{{money .Subtotal}}</td>
          </tr>
        </tbody>
      </table>
    </div>
{{- end}}
  </div>

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0; text-align: center; color: #666; font-size: 12px;">
    <p>This report was generated by {{.Footer}}</p>
    <p>For more information or to recalculate your costs, visit <a href="{{.URL}}" style="color: #245e4f;">startupcalc.com</a></p>
  </div>
</body>
</html>
`
