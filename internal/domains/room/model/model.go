package model

import (
	gModel "lodge/shared/model"
	"lodge/shared/money"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldCategory = "category"
	FieldRate     = "rate_cents"
	FieldStatus   = "status"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
)

// Room status is derived from the active booking lifecycle. Only the
// booking and checkout services write it; handlers never set it directly.
type Room struct {
	ID        string      `db:"id"`
	Number    string      `db:"number"`
	Category  string      `db:"category"`
	RateCents money.Cents `db:"rate_cents"`
	Status    string      `db:"status"`
	gModel.Metadata
}
