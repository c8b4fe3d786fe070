package gofpdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"cm-madeira/go_backend/internal/domain/quote"
	"cm-madeira/go_backend/internal/domain/quote/pdf"
)

type Generator struct {
	LogoPath    string
	CompanyName string
}

func New(logoPath, companyName string) *Generator {
	return &Generator{LogoPath: logoPath, CompanyName: companyName}
}

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	if len(q.Lines) == 0 {
		return nil, pdf.ErrNoLines
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr("Orçamento"), true)
	doc.AddPage()

	// Missing logo must not fail the render.
	if g.LogoPath != "" {
		if _, err := os.Stat(g.LogoPath); err == nil {
			doc.ImageOptions(g.LogoPath, 10, 8, 30, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			doc.Ln(14)
		}
	}

	title := "Quotation"
	if g.CompanyName != "" {
		title = fmt.Sprintf("Quotation - %s", g.CompanyName)
	}
	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Arial", "", 11)
	if q.Number != "" {
		doc.CellFormat(0, 6, tr(fmt.Sprintf("No. %s, issued %s", q.Number, q.CreatedAt.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	}
	doc.CellFormat(0, 6, tr("Client: "+q.Client.Name), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Phone: "+q.Client.Phone), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Document: "+q.Client.Document), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Address: "+q.Client.Address), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(85, 7, "Product", "1", 0, "L", false, 0, "")
	doc.CellFormat(25, 7, "Quantity", "1", 0, "C", false, 0, "")
	doc.CellFormat(40, 7, "Unit Price", "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, "Total", "1", 1, "R", false, 0, "")

	doc.SetFont("Arial", "", 10)
	for _, l := range q.Lines {
		doc.CellFormat(85, 6, tr(trim(l.Product, 48)), "1", 0, "L", false, 0, "")
		doc.CellFormat(25, 6, tr(fmt.Sprintf("%d %s", l.Qty, l.Unit)), "1", 0, "C", false, 0, "")
		doc.CellFormat(40, 6, money(l.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 6, money(l.LineTotal), "1", 1, "R", false, 0, "")
	}

	doc.Ln(4)
	doc.SetFont("Arial", "", 11)
	doc.CellFormat(0, 6, fmt.Sprintf("Discount: %.2f%% - %s", q.DiscountPercent, money(q.DiscountAmount)), "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 7, "Total: "+money(q.Total), "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 5, tr("Validity: "+q.ValidityTerm), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, tr("Payment method: "+q.PaymentMethod), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Display-only rounding happens here; upstream values keep full precision.
func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
