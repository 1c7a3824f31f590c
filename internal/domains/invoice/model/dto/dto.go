package dto

import (
	"lodge/internal/domains/invoice/model"
	"lodge/shared/constant"
	"lodge/shared/money"
	"lodge/shared/timezone"
)

type LineResponse struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Position    int    `json:"position"`
}

type InvoiceResponse struct {
	ID            string         `json:"id"`
	BookingID     string         `json:"booking_id"`
	RoomID        string         `json:"room_id"`
	Nights        int            `json:"nights"`
	SubtotalCents int64          `json:"subtotal_cents"`
	TaxCents      int64          `json:"tax_cents"`
	TotalCents    int64          `json:"total_cents"`
	BalanceCents  int64          `json:"balance_cents"`
	Subtotal      string         `json:"subtotal"`
	Tax           string         `json:"tax"`
	Total         string         `json:"total"`
	Currency      string         `json:"currency"`
	PaymentMethod string         `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
	AmountPaid    string         `json:"amount_paid"`
	PaymentRef    string         `json:"payment_ref,omitempty"`
	IssuedAt      string         `json:"issued_at"`
	Lines         []LineResponse `json:"lines"`
}

func (i *InvoiceResponse) FromModel(invoice model.Invoice, lines []model.Line) {
	i.ID = invoice.ID
	i.BookingID = invoice.BookingID
	i.RoomID = invoice.RoomID
	i.Nights = invoice.Nights
	i.SubtotalCents = int64(invoice.SubtotalCents)
	i.TaxCents = int64(invoice.TaxCents)
	i.TotalCents = int64(invoice.TotalCents)
	i.BalanceCents = int64(invoice.BalanceCents)
	i.Subtotal = money.Format(invoice.SubtotalCents)
	i.Tax = money.Format(invoice.TaxCents)
	i.Total = money.Format(invoice.TotalCents)
	i.Currency = invoice.Currency
	i.PaymentMethod = invoice.PaymentMethod
	i.PaymentStatus = invoice.PaymentStatus
	i.AmountPaid = money.Format(invoice.AmountPaidCents)
	i.PaymentRef = invoice.PaymentRef
	i.IssuedAt = timezone.Format(invoice.IssuedAt, constant.DateFormat)

	i.Lines = make([]LineResponse, 0, len(lines))
	for _, line := range lines {
		i.Lines = append(i.Lines, LineResponse{
			Kind:        line.Kind,
			Description: line.Description,
			AmountCents: int64(line.AmountCents),
			Amount:      money.Format(line.AmountCents),
			Position:    line.Position,
		})
	}
}
