package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"gopkg.in/gomail.v2"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

// RenderBill renders a completed order as a PDF bill.
func RenderBill(settings models.Settings, order models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, settings.CafeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order %s - %s %s", order.ID, order.Date, order.Time), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s", order.CustomerName), "", 1, "C", false, 0, "")
	if order.TableNumber != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Table: %s", order.TableNumber), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range order.Items {
		pdf.CellFormat(90, 6, it.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("x%d", it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", it.Subtotal), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", order.Subtotal},
		{"Discount", -order.Discount},
		{"Tax", order.Tax},
		{"Service Charge", order.ServiceCharge},
		{"Total", order.Total},
	}
	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Helvetica", "B", 11)
		}
		pdf.CellFormat(135, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", row.value), "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Payment: %s - Thank you!", order.PaymentStatus), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bill: %w", err)
	}
	return buf.Bytes(), nil
}

// BillMailer delivers a rendered bill to a customer address.
type BillMailer interface {
	SendBill(to string, order models.Order, pdfBill []byte) error
}

// SMTPMailer sends bills over SMTP.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) SendBill(to string, order models.Order, pdfBill []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Your bill for order %s", order.ID))
	msg.SetBody("text/plain", fmt.Sprintf("Dear %s,\n\nThank you for your visit. Your bill for order %s (total %.2f) is attached.\n",
		order.CustomerName, order.ID, order.Total))
	msg.Attach(fmt.Sprintf("bill-%s.pdf", order.ID), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdfBill)
		return err
	}))

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send bill %s to %s: %w", order.ID, to, err)
	}
	utils.InfoLogger.Printf("Bill for %s mailed to %s", order.ID, to)
	return nil
}
