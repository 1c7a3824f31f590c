package dto

import (
	"lodge/internal/domains/billing"
	"lodge/shared/constant"
	"lodge/shared/money"
	"lodge/shared/timezone"
	"time"
)

type CheckoutRequest struct {
	PaymentDetails map[string]string `json:"payment_details"`
}

type CheckoutResponse struct {
	BookingID       string `json:"booking_id"`
	InvoiceID       string `json:"invoice_id"`
	Nights          int    `json:"nights"`
	RoomCharge      string `json:"room_charge"`
	IncidentalTotal string `json:"incidental_total"`
	AddOnTotal      string `json:"addon_total"`
	Subtotal        string `json:"subtotal"`
	Tax             string `json:"tax"`
	Total           string `json:"total"`
	AmountCharged   string `json:"amount_charged"`
	Currency        string `json:"currency"`
	PaymentRef      string `json:"payment_ref,omitempty"`
	CheckedOutAt    string `json:"checked_out_at"`
}

func (c *CheckoutResponse) FromStatement(bookingID, invoiceID, currency, paymentRef string, statement billing.Statement, charged money.Cents, at time.Time) {
	c.BookingID = bookingID
	c.InvoiceID = invoiceID
	c.Nights = statement.Nights
	c.RoomCharge = money.Format(statement.RoomCharge)
	c.IncidentalTotal = money.Format(statement.IncidentalTotal)
	c.AddOnTotal = money.Format(statement.AddOnTotal)
	c.Subtotal = money.Format(statement.Subtotal)
	c.Tax = money.Format(statement.Tax)
	c.Total = money.Format(statement.Total)
	c.AmountCharged = money.Format(charged)
	c.Currency = currency
	c.PaymentRef = paymentRef
	c.CheckedOutAt = timezone.Format(at, constant.DateFormat)
}
