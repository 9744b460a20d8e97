package service

import (
	"context"
	"fmt"
	"log"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
	"github.com/alexacafe/pos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	state       *state.Store
	shopName    string
	symbol      string
	printerType string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, st *state.Store, shopName, currencySymbol, printerType string, width int) *PrinterService {
	return &PrinterService{
		printer:     p,
		state:       st,
		shopName:    shopName,
		symbol:      currencySymbol,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt looks up a committed receipt and sends it to the printer.
func (s *PrinterService) PrintReceipt(ctx context.Context, orderNumber string) (*entity.Receipt, error) {
	r, ok := s.state.FindPurchase(orderNumber)
	if !ok {
		return nil, apperror.NewNotFoundError("Receipt not found")
	}

	data := s.FormatReceipt(&r)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderNumber, err)
		return &r, fmt.Errorf("failed to print receipt: %w", err)
	}
	return &r, nil
}

// TestPrint sends a sample receipt to the printer.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		OrderNumber:  "TEST01",
		CustomerName: "Printer Test",
		Items: []entity.ReceiptItem{
			{Name: "Iced Coffee", Size: "12 oz", UnitPrice: 12000, Quantity: 1},
			{Name: "Wintermelon", Size: "16 oz", UnitPrice: 16000, Quantity: 2},
		},
		PaymentMethod: entity.PaymentMethodCash,
	}
	receipt.CashAmount = 50000
	receipt.Recompute()

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width) // 32 chars for 58mm paper

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.shopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	doc.LineFeed().SetAlign(printer.AlignLeft)
	doc.KeyValue("Order #:", r.OrderNumber)
	doc.KeyValue("Customer:", r.CustomerName)
	if !r.Date.IsZero() {
		doc.KeyValue("Date:", r.Date.Format("2006-01-02"))
	}

	doc.Separator('-')
	for _, item := range r.Items {
		name := item.Name
		if item.Size != "" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.Size)
		}
		doc.ItemLine(name, item.Quantity, item.LineTotal().Format())
	}
	doc.Separator('-')

	doc.SetBold(true)
	doc.KeyValue("Total:", s.symbol+r.Total.Format())
	doc.SetBold(false)
	doc.KeyValue("Cash:", s.symbol+r.CashAmount.Format())
	doc.KeyValue("Change:", s.symbol+r.Balance.Format())
	if r.IsEdited {
		doc.LineFeed().SetAlign(printer.AlignCenter).Text("* RECEIPT EDITED *")
	}

	doc.LineFeed().
		SetAlign(printer.AlignCenter).
		Text("THANK YOU, COME AGAIN!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
