package model

import (
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"time"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID        = "id"
	FieldBookingID = "booking_id"

	LineTableName  = "invoice_lines"
	LineEntityName = "invoice_line"

	FieldLineID        = "id"
	FieldLineInvoiceID = "invoice_id"
)

const (
	LineKindRoom       = "room"
	LineKindIncidental = "incidental"
	LineKindAddOn      = "addon"
	LineKindTax        = "tax"
)

// Invoice is the immutable record of a settled stay. It is written once by
// the checkout transaction and never updated.
type Invoice struct {
	ID              string      `db:"id"`
	BookingID       string      `db:"booking_id"`
	RoomID          string      `db:"room_id"`
	Nights          int         `db:"nights"`
	SubtotalCents   money.Cents `db:"subtotal_cents"`
	TaxCents        money.Cents `db:"tax_cents"`
	TotalCents      money.Cents `db:"total_cents"`
	BalanceCents    money.Cents `db:"balance_cents"`
	Currency        string      `db:"currency"`
	PaymentMethod   string      `db:"payment_method"`
	PaymentStatus   string      `db:"payment_status"`
	AmountPaidCents money.Cents `db:"amount_paid_cents"`
	PaymentRef      string      `db:"payment_ref"`
	IssuedAt        time.Time   `db:"issued_at"`
	gModel.Metadata
}

// Line positions are assigned in billing order: room, incidentals, add-ons,
// then tax last.
type Line struct {
	ID          string      `db:"id"`
	InvoiceID   string      `db:"invoice_id"`
	Kind        string      `db:"kind"`
	Description string      `db:"description"`
	AmountCents money.Cents `db:"amount_cents"`
	Position    int         `db:"position"`
	gModel.Metadata
}
