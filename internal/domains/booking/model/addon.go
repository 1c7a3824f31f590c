package model

import (
	gModel "lodge/shared/model"
	"lodge/shared/money"
)

const (
	AddOnTableName  = "booking_addons"
	AddOnEntityName = "booking_addon"

	FieldAddOnID        = "id"
	FieldAddOnBookingID = "booking_id"
	FieldAddOnName      = "name"
	FieldAddOnCost      = "cost_cents"
)

type AddOn struct {
	ID        string      `db:"id"`
	BookingID string      `db:"booking_id"`
	Name      string      `db:"name"`
	CostCents money.Cents `db:"cost_cents"`
	gModel.Metadata
}
