// Package document turns a finalized invoice snapshot into a paginated
// printable document. Layout is a pure pass that decides page breaks
// and block positions; painting the blocks to PDF lives in pdf.go.
package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/javierDev03/invoices/internal/currency"
	"github.com/javierDev03/invoices/internal/invoice"
)

// Page geometry, A4 in millimeters.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	marginX      = 20.0
	contentWidth = 170.0

	// headerHeight is where the cursor restarts after a page break.
	headerHeight = 50.0
	// maxYPosition is the last usable cursor position of a page.
	maxYPosition = 250.0
	itemHeight   = 8.0
	totalsHeight = 45.0
	notesHeight  = 30.0
	// notesOffset is the gap between the totals block and the notes
	// block when both share a page.
	notesOffset = 45.0
	footerY     = 280.0

	contactStartY = 55.0
	clientBlockY  = 80.0
	firstTableY   = 130.0

	// Free-text clipping budgets: the header band fits two company
	// address lines, the client panel two client address lines.
	maxHeaderAddressLines = 2
	maxClientAddressLines = 2

	// notesWrapChars approximates the 170mm text column at the notes
	// font size.
	notesWrapChars = 95
)

// Block is one positioned content block on a page.
type Block interface {
	isBlock()
}

// Header is the colored band drawn at the top of every page.
type Header struct {
	CompanyName  string
	AddressLines []string
	Number       string
	IssueDate    string
	// PageNumber is rendered only when greater than 1.
	PageNumber int
}

// ContactLines are the company phone/email lines under the header,
// first page only.
type ContactLines struct {
	Y     float64
	Lines []string
}

// DueDate is the due-date emphasis in the top right, first page only.
type DueDate struct {
	Text string
}

// ClientBlock is the "FACTURAR A" panel, first page only.
type ClientBlock struct {
	Y            float64
	Name         string
	AddressLines []string
}

// TableHead is the line item column header band.
type TableHead struct {
	Y float64
}

// ItemRow is one line item row. Values arrive pre-formatted.
type ItemRow struct {
	Y           float64
	Shaded      bool
	Description string
	Quantity    string
	Price       string
	Total       string
}

// Totals is the subtotal/tax/total box.
type Totals struct {
	Y        float64
	Subtotal string
	Tax      string
	Total    string
}

// Notes is the wrapped free-text notes block.
type Notes struct {
	Y     float64
	Lines []string
}

// Footer is the closing caption, drawn on the last page only.
type Footer struct {
	Caption string
}

func (Header) isBlock()       {}
func (ContactLines) isBlock() {}
func (DueDate) isBlock()      {}
func (ClientBlock) isBlock()  {}
func (TableHead) isBlock()    {}
func (ItemRow) isBlock()      {}
func (Totals) isBlock()       {}
func (Notes) isBlock()        {}
func (Footer) isBlock()       {}

// Page is one output page with its positioned blocks.
type Page struct {
	Number int
	Blocks []Block
}

const footerCaption = "Generado con Generador de Facturas Open Source"

// Layout paginates an invoice snapshot. It is pure and re-entrant:
// calling it again with the same snapshot yields the same pages.
func Layout(inv invoice.Invoice) []Page {
	l := &layouter{inv: inv}

	l.startPage()
	l.add(ContactLines{Y: contactStartY, Lines: contactLines(inv.Company)})
	if !inv.DueDate.IsZero() {
		l.add(DueDate{Text: "Vencimiento: " + formatDate(inv.DueDate)})
	}
	l.add(ClientBlock{
		Y:            clientBlockY,
		Name:         fallback(inv.Client.Name, "Cliente"),
		AddressLines: clipLines(inv.Client.Address, maxClientAddressLines),
	})

	l.y = firstTableY
	l.addTableHead()

	for i, item := range inv.Items {
		if l.y+itemHeight > maxYPosition {
			l.startPage()
			l.y = headerHeight
			l.addTableHead()
		}

		l.add(ItemRow{
			Y:           l.y,
			Shaded:      i%2 == 0,
			Description: item.Description,
			Quantity:    strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			Price:       currency.Format(item.UnitPrice),
			Total:       currency.Format(item.LineTotal),
		})
		l.y += itemHeight
	}

	if l.y+totalsHeight > maxYPosition {
		l.startPage()
		l.y = headerHeight
	}

	l.y += 10
	l.add(Totals{
		Y:        l.y,
		Subtotal: currency.Format(inv.Subtotal),
		Tax:      currency.Format(inv.TaxAmount),
		Total:    currency.Format(inv.Total),
	})

	if inv.Notes != "" {
		if l.y+notesOffset+notesHeight > maxYPosition {
			l.startPage()
			l.y = headerHeight
		} else {
			l.y += notesOffset
		}

		l.add(Notes{Y: l.y, Lines: wrapText(inv.Notes, notesWrapChars)})
	}

	l.add(Footer{Caption: footerCaption})

	return l.pages
}

type layouter struct {
	inv   invoice.Invoice
	pages []Page
	y     float64
}

// startPage opens a new page and draws its header band.
func (l *layouter) startPage() {
	number := len(l.pages) + 1
	l.pages = append(l.pages, Page{Number: number})
	l.add(Header{
		CompanyName:  fallback(l.inv.Company.Name, "Mi Empresa"),
		AddressLines: clipLines(l.inv.Company.Address, maxHeaderAddressLines),
		Number:       l.inv.Number,
		IssueDate:    formatDate(l.inv.IssueDate),
		PageNumber:   number,
	})
}

func (l *layouter) add(b Block) {
	p := &l.pages[len(l.pages)-1]
	p.Blocks = append(p.Blocks, b)
}

// addTableHead places the column header band at the cursor and moves
// the cursor to the first row position.
func (l *layouter) addTableHead() {
	l.add(TableHead{Y: l.y})
	l.y += itemHeight
}

func contactLines(p invoice.Party) []string {
	var lines []string
	if p.Phone != "" {
		lines = append(lines, "Tel: "+p.Phone)
	}
	if p.Email != "" {
		lines = append(lines, "Email: "+p.Email)
	}

	return lines
}

// clipLines splits a multi-line field and truncates it to the block's
// budget instead of letting the block grow.
func clipLines(s string, max int) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if len(lines) > max {
		lines = lines[:max]
	}

	return lines
}

// wrapText word-wraps free text into lines of at most maxChars
// characters, keeping explicit newlines.
func wrapText(s string, maxChars int) []string {
	var lines []string

	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > maxChars {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}

		lines = append(lines, line)
	}

	return lines
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
