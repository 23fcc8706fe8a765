// Package invoicepdf renders an invoice as a one-page A4 PDF.
package invoicepdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/format"
	"github.com/jung-kurt/gofpdf/v2"
)

// Issuer is the landlord or management company printed in the header.
type Issuer struct {
	Name    string
	Address string
	Email   string
}

// Render draws inv and returns the PDF bytes. payURL, when set, is printed
// as the place to pay online.
func Render(inv *domain.Invoice, issuer Issuer, payURL string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Invoice "+shortID(inv), true)
	pdf.AddPage()

	// Core fonts are cp1252; translate names like "Núñez".
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(120, 10, tr(issuer.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(60, 10, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 5, tr(issuer.Address), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, "No. "+shortID(inv), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 5, tr(issuer.Email), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, "Issued "+format.Date(inv.CreatedAt), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Bill to / summary block
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Bill to", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 8, "Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	name, email := recipient(inv)
	pdf.CellFormat(90, 6, tr(name), "LR", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, "Due: "+format.Date(inv.DueDate)+" ("+format.DueLabel(inv.DueDate, now)+")", "LR", 1, "L", false, 0, "")
	pdf.CellFormat(90, 6, tr(email), "LR", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, "Status: "+string(inv.DisplayStatus(now)), "LR", 1, "L", false, 0, "")
	pdf.CellFormat(90, 6, tr(inv.PropertyName), "LRB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, "Total: "+format.Currency(inv.Total), "LRB", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Line items
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(15, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(125, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, item := range inv.Items {
		desc := item.Description
		if len(desc) > 70 {
			desc = desc[:67] + "..."
		}
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(125, 6, tr(desc), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, format.Currency(item.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	if inv.IsPaid() {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 230, 200)
	}
	pdf.CellFormat(140, 8, "Total due", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, format.Currency(inv.Total), "1", 1, "R", true, 0, "")

	if payURL != "" && !inv.IsPaid() {
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(180, 6, "Pay online:", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 180)
		pdf.CellFormat(180, 6, payURL, "", 1, "L", false, 0, payURL)
		pdf.SetTextColor(0, 0, 0)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for inv.
func Filename(inv *domain.Invoice) string {
	return "invoice-" + shortID(inv) + ".pdf"
}

func shortID(inv *domain.Invoice) string {
	return inv.ID.String()[:8]
}

func recipient(inv *domain.Invoice) (string, string) {
	if inv.TenantName != "" {
		return inv.TenantName, inv.TenantEmail
	}
	return inv.ContactName, inv.ContactEmail
}
