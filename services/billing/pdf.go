package billing

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"salonhq/config"
	"salonhq/models"
)

// RenderPDF renders a stored bill as an A4 receipt.
func (s *DefaultBillingService) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	bill, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill %s: %w", id, err)
	}
	return renderBill(bill)
}

func renderBill(bill *models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Bill %s", bill.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, config.AppConfig.SalonName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if config.AppConfig.SalonPhone != "" {
		pdf.CellFormat(0, 5, "Phone: "+config.AppConfig.SalonPhone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Bill No: %s", bill.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", bill.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Client: %s (%s)", bill.ClientName, bill.ClientContact), "", 1, "L", false, 0, "")
	if bill.Staff != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Served by: %s", bill.Staff), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Line item table.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, "Service", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range bill.Items {
		pdf.CellFormat(90, 8, item.Service, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Total), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Amount Paid", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", bill.TotalAmount), "1", 1, "R", false, 0, "")
	if bill.PaymentMode != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "Payment mode: "+bill.PaymentMode, "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Thank you for visiting!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render bill PDF: %w", err)
	}
	return buf.Bytes(), nil
}
