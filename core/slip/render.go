package slip

import (
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	logoSize   = 35.0 // mm
	lineHeight = 7.0
	cellHeight = 8.0
)

// column widths of an A4 page with 10mm margins
var colWidths = [4]float64{35, 85, 25, 45}

// Renderer renders a Slip as a single A4 PDF page.
type Renderer struct {
	logoPath string
}

// NewRenderer returns a Renderer drawing the logo at `logoPath` on top of every slip.
// The logo is optional: it is skipped when the file is absent or unreadable.
func NewRenderer(logoPath string) *Renderer {
	return &Renderer{logoPath: logoPath}
}

func (r *Renderer) Render(w io.Writer, s Slip) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(s.Title, true)
	pdf.SetCreationDate(s.GeneratedAt)
	pdf.SetAutoPageBreak(false, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.drawLogo(pdf)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(s.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, lineHeight, tr("Student: "+s.Student.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, tr("Admission Number: "+s.Student.AdmissionNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, tr("Programme: "+s.Student.Programme), "", 1, "L", false, 0, "")
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	for i, h := range Headers {
		pdf.CellFormat(colWidths[i], cellHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range s.Rows {
		for i, cell := range row.Cells() {
			pdf.CellFormat(colWidths[i], cellHeight, tr(fit(pdf, cell, colWidths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "rendering result slip")
	}
	return nil
}

func (r *Renderer) drawLogo(pdf *fpdf.Fpdf) {
	if r.logoPath == "" {
		return
	}
	if fi, err := os.Stat(r.logoPath); err != nil || fi.IsDir() {
		return
	}

	opts := fpdf.ImageOptions{ReadDpi: true}
	info := pdf.RegisterImageOptions(r.logoPath, opts)
	if pdf.Err() || info == nil {
		pdf.ClearError()
		return
	}
	pageW, _ := pdf.GetPageSize()
	pdf.ImageOptions(r.logoPath, (pageW-logoSize)/2, pdf.GetY(), logoSize, 0, true, opts, 0, "")
	pdf.Ln(2)
}

// fit trims `text` so it fits in a cell `width` wide.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	const ellipsis = "..."
	maxW := width - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(text) <= maxW {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+ellipsis) > maxW {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
