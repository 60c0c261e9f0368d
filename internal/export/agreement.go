package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/abhidesai17/gigflow/internal/model"
)

const agreementFont = "Helvetica"

type AgreementGenerator struct{}

func NewAgreementGenerator() *AgreementGenerator {
	return &AgreementGenerator{}
}

// Generate renders the one-page hire agreement for an assigned gig.
func (g *AgreementGenerator) Generate(doc model.AgreementDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(agreementFont, "B", 14)
	pdf.CellFormat(0, 10, "Gig Engagement Agreement", "", 1, "C", false, 0, "")

	pdf.SetFont(agreementFont, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Gig %s, posted %s", doc.Gig.ID, formatDate(doc.Gig.CreatedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	partyBlock(pdf, "Client", doc.OwnerName, doc.Gig.OwnerID.String())
	pdf.Ln(2)
	partyBlock(pdf, "Contractor", doc.BidderName, doc.HiredBid.BidderID.String())
	pdf.Ln(4)

	pdf.SetFont(agreementFont, "B", 12)
	pdf.CellFormat(0, 8, "Scope of work", "", 1, "L", false, 0, "")
	pdf.SetFont(agreementFont, "", 11)
	pdf.MultiCell(0, 5, doc.Gig.Title, "", "L", false)
	pdf.MultiCell(0, 5, doc.Gig.Description, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(agreementFont, "B", 12)
	pdf.CellFormat(0, 8, "Terms", "", 1, "L", false, 0, "")
	pdf.SetFont(agreementFont, "", 10)

	headers := []string{"Item", "Amount"}
	colWidths := []float64{120, 60}
	drawTableRow(pdf, headers, colWidths, true)
	drawTableRow(pdf, []string{"Listed budget", formatAmount(doc.Gig.Budget)}, colWidths, false)
	drawTableRow(pdf, []string{"Agreed price", formatAmount(doc.HiredBid.ProposedPrice)}, colWidths, false)

	pdf.Ln(2)
	pdf.SetFont(agreementFont, "", 11)
	pdf.MultiCell(0, 5, fmt.Sprintf("Proposal: %s", doc.HiredBid.Message), "", "L", false)

	pdf.Ln(6)
	pdf.SetFont(agreementFont, "B", 12)
	pdf.CellFormat(0, 8, "Signatures", "", 1, "L", false, 0, "")
	pdf.SetFont(agreementFont, "", 11)
	signatureBlock(pdf, "Client", doc.OwnerName)
	signatureBlock(pdf, "Contractor", doc.BidderName)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName builds the download name for the gig's agreement.
func (g *AgreementGenerator) FileName(gig model.Gig) string {
	return fmt.Sprintf("agreement-%s.pdf", gig.ID)
}

func partyBlock(pdf *gofpdf.Fpdf, title, name, id string) {
	pdf.SetFont(agreementFont, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(agreementFont, "", 10)
	pdf.MultiCell(0, 5, safeValue(name), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("ID: %s", id), "", "L", false)
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(agreementFont, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, label, name string) {
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name)), "", 1, "L", false, 0, "")
}

func safeValue(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
