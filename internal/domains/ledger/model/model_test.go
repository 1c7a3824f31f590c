package model_test

import (
	"lodge/internal/domains/ledger/model"
	"lodge/shared/money"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryAccumulate(t *testing.T) {
	entry := model.Entry{
		RoomID:                 "room-1",
		EntryDate:              time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		RoomRevenueCents:       10000,
		IncidentalRevenueCents: 2000,
		OccupiedNights:         2,
	}

	entry.Accumulate(model.Entry{RoomRevenueCents: 5000, IncidentalRevenueCents: 1000, OccupiedNights: 1})
	assert.Equal(t, money.Cents(15000), entry.RoomRevenueCents)
	assert.Equal(t, money.Cents(3000), entry.IncidentalRevenueCents)
	assert.Equal(t, 3, entry.OccupiedNights)

	entry.Accumulate(model.Entry{RoomRevenueCents: 5000})
	assert.Equal(t, money.Cents(20000), entry.RoomRevenueCents)
	assert.Equal(t, money.Cents(23000), entry.TotalCents())
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2025, time.June, 3, 17, 42, 9, 123, time.UTC)

	assert.Equal(t, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), model.DateOf(ts))
}
