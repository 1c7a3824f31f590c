package model

import (
	gModel "lodge/shared/model"
	"lodge/shared/money"
)

const (
	TableName  = "incidental_charges"
	EntityName = "incidental_charge"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldRoomID    = "room_id"
	FieldStatus    = "status"
	FieldInvoiceID = "invoice_id"
)

const (
	StatusPending   = "pending"
	StatusBilled    = "billed"
	StatusCancelled = "cancelled"
)

// Charge accrues against an occupied booking and stays pending until the
// checkout transaction folds it into an invoice. Billed charges carry the
// invoice that consumed them and never change again.
type Charge struct {
	ID          string      `db:"id"`
	BookingID   string      `db:"booking_id"`
	RoomID      string      `db:"room_id"`
	Description string      `db:"description"`
	AmountCents money.Cents `db:"amount_cents"`
	Status      string      `db:"status"`
	InvoiceID   *string     `db:"invoice_id"`
	gModel.Metadata
}
