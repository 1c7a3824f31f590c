package model

import (
	"lodge/shared/money"
	"time"
)

const (
	TableName  = "revenue_ledger"
	EntityName = "revenue_entry"

	FieldRoomID    = "room_id"
	FieldEntryDate = "entry_date"
)

// Entry is the revenue recognized for a room on a calendar date. The pair
// (RoomID, EntryDate) is the primary key; checkouts that land on the same
// key merge additively instead of overwriting.
type Entry struct {
	RoomID                 string      `db:"room_id"`
	EntryDate              time.Time   `db:"entry_date"`
	RoomRevenueCents       money.Cents `db:"room_revenue_cents"`
	IncidentalRevenueCents money.Cents `db:"incidental_revenue_cents"`
	OccupiedNights         int         `db:"occupied_nights"`
	ModifiedAt             time.Time   `db:"modified_at"`
}

// Accumulate folds another entry into this one, mirroring the additive
// merge the database upsert performs.
func (e *Entry) Accumulate(other Entry) {
	e.RoomRevenueCents += other.RoomRevenueCents
	e.IncidentalRevenueCents += other.IncidentalRevenueCents
	e.OccupiedNights += other.OccupiedNights
}

// TotalCents is the revenue recognized by the entry across both streams.
func (e *Entry) TotalCents() money.Cents {
	return e.RoomRevenueCents + e.IncidentalRevenueCents
}

// DateOf truncates a timestamp to the calendar date the ledger buckets by.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
