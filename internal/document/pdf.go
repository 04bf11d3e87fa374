package document

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Palette from the editing UI, kept so the exported document matches
// the preview.
type rgb struct{ r, g, b int }

var (
	colorPrimary   = rgb{59, 130, 246}
	colorSecondary = rgb{99, 102, 241}
	colorText      = rgb{30, 41, 59}
	colorMuted     = rgb{100, 116, 139}
	colorPanel     = rgb{248, 250, 252}
	colorWhite     = rgb{255, 255, 255}
)

// PDFWriter paints laid-out pages onto an A4 portrait PDF.
type PDFWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewPDF lays out the given pages and paints them. The result is
// written out with WriteTo or ProduceBytes.
func NewPDF(pages []Page) *PDFWriter {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	w := &PDFWriter{
		pdf: pdf,
		// Core fonts are cp1252; translate so accented labels survive.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}

	lastPage := len(pages) - 1
	for i, page := range pages {
		w.paintPage(page, i == lastPage)
	}

	return w
}

// WriteTo writes the finished document to out.
func (w *PDFWriter) WriteTo(out io.Writer) error {
	return w.pdf.Output(out)
}

// ProduceBytes returns the finished document as a byte slice.
func (w *PDFWriter) ProduceBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (w *PDFWriter) paintPage(page Page, last bool) {
	w.pdf.AddPage()

	for _, block := range page.Blocks {
		switch b := block.(type) {
		case Header:
			w.paintHeader(b)
		case ContactLines:
			w.paintContactLines(b)
		case DueDate:
			w.paintDueDate(b)
		case ClientBlock:
			w.paintClientBlock(b)
		case TableHead:
			w.paintTableHead(b)
		case ItemRow:
			w.paintItemRow(b)
		case Totals:
			w.paintTotals(b)
		case Notes:
			w.paintNotes(b)
		case Footer:
			if last {
				w.paintFooter(b)
			}
		}
	}
}

func (w *PDFWriter) paintHeader(b Header) {
	w.fill(colorPrimary)
	w.pdf.Rect(0, 0, PageWidth, 40, "F")
	w.fill(colorSecondary)
	w.pdf.Rect(0, 35, PageWidth, 10, "F")

	w.font("B", 24, colorWhite)
	w.text(marginX, 25, b.CompanyName)

	w.font("", 10, colorWhite)
	y := 32.0
	for _, line := range b.AddressLines {
		w.text(marginX, y, line)
		y += 4
	}

	w.font("B", 28, colorWhite)
	w.text(140, 25, "FACTURA")

	w.font("", 10, colorWhite)
	w.text(140, 32, "#"+b.Number)
	w.text(140, 37, "Fecha: "+b.IssueDate)

	if b.PageNumber > 1 {
		w.font("", 8, colorWhite)
		w.text(180, 37, fmt.Sprintf("Página %d", b.PageNumber))
	}
}

func (w *PDFWriter) paintContactLines(b ContactLines) {
	w.font("", 9, colorMuted)
	y := b.Y
	for _, line := range b.Lines {
		w.text(marginX, y, line)
		y += 5
	}
}

func (w *PDFWriter) paintDueDate(b DueDate) {
	w.font("B", 9, colorPrimary)
	w.text(140, 50, b.Text)
}

func (w *PDFWriter) paintClientBlock(b ClientBlock) {
	w.fill(colorPanel)
	w.pdf.Rect(marginX, b.Y-5, contentWidth, 35, "F")

	w.font("B", 12, colorPrimary)
	w.text(25, b.Y+5, "FACTURAR A:")

	w.font("B", 14, colorText)
	w.text(25, b.Y+15, b.Name)

	w.font("", 9, colorMuted)
	y := b.Y + 22
	for _, line := range b.AddressLines {
		w.text(25, y, line)
		y += 4
	}
}

func (w *PDFWriter) paintTableHead(b TableHead) {
	w.fill(colorPrimary)
	w.pdf.Rect(marginX, b.Y-8, contentWidth, 12, "F")

	w.font("B", 10, colorWhite)
	w.text(25, b.Y-2, "DESCRIPCIÓN")
	w.text(120, b.Y-2, "CANT.")
	w.text(140, b.Y-2, "PRECIO")
	w.text(165, b.Y-2, "TOTAL")
}

func (w *PDFWriter) paintItemRow(b ItemRow) {
	if b.Shaded {
		w.fill(colorPanel)
		w.pdf.Rect(marginX, b.Y-4, contentWidth, itemHeight, "F")
	}

	w.font("", 9, colorText)
	w.text(25, b.Y, b.Description)
	w.text(125, b.Y, b.Quantity)
	w.text(145, b.Y, b.Price)
	w.text(170, b.Y, b.Total)
}

func (w *PDFWriter) paintTotals(b Totals) {
	w.fill(colorPanel)
	w.pdf.Rect(120, b.Y-5, 70, 35, "F")

	w.font("", 10, colorMuted)
	w.text(125, b.Y+5, "Subtotal:")
	w.text(170, b.Y+5, b.Subtotal)
	w.text(125, b.Y+12, "IVA:")
	w.text(170, b.Y+12, b.Tax)

	w.font("B", 14, colorPrimary)
	w.text(125, b.Y+22, "TOTAL:")
	w.text(165, b.Y+22, b.Total)
}

func (w *PDFWriter) paintNotes(b Notes) {
	w.font("B", 10, colorText)
	w.text(marginX, b.Y, "NOTAS:")

	w.font("", 9, colorMuted)
	y := b.Y + 8
	for _, line := range b.Lines {
		w.text(marginX, y, line)
		y += 4
	}
}

func (w *PDFWriter) paintFooter(b Footer) {
	w.font("", 8, colorMuted)
	w.text(marginX, footerY, b.Caption)
}

func (w *PDFWriter) fill(c rgb) {
	w.pdf.SetFillColor(c.r, c.g, c.b)
}

func (w *PDFWriter) font(style string, size float64, c rgb) {
	w.pdf.SetFont("Helvetica", style, size)
	w.pdf.SetTextColor(c.r, c.g, c.b)
}

func (w *PDFWriter) text(x, y float64, s string) {
	w.pdf.Text(x, y, w.tr(s))
}
