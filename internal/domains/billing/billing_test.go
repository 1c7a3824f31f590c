package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/billing"
	"lodge/shared/money"
)

func TestNights(t *testing.T) {
	base := time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "exactly one night", checkIn: base, checkOut: base.Add(24 * time.Hour), want: 1},
		{name: "partial second night rounds up", checkIn: base, checkOut: base.Add(26 * time.Hour), want: 2},
		{name: "short stay bills one night", checkIn: base, checkOut: base.Add(3 * time.Hour), want: 1},
		{name: "zero duration bills one night", checkIn: base, checkOut: base, want: 1},
		{name: "checkout before checkin bills one night", checkIn: base, checkOut: base.Add(-time.Hour), want: 1},
		{name: "exactly three nights", checkIn: base, checkOut: base.Add(72 * time.Hour), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestCompute(t *testing.T) {
	checkIn := time.Date(2025, time.June, 1, 11, 0, 0, 0, time.UTC)

	// 26-hour stay at 100.00/night with a 20.00 incidental and 10% tax:
	// 2 nights -> 200.00 room, 220.00 subtotal, 22.00 tax, 242.00 total.
	statement := billing.Compute(billing.Input{
		RateCents:   10000,
		CheckIn:     checkIn,
		CheckOut:    checkIn.Add(26 * time.Hour),
		Incidentals: []money.Cents{2000},
		TaxRateBps:  1000,
	})

	assert.Equal(t, 2, statement.Nights)
	assert.Equal(t, money.Cents(20000), statement.RoomCharge)
	assert.Equal(t, money.Cents(2000), statement.IncidentalTotal)
	assert.Equal(t, money.Cents(22000), statement.Subtotal)
	assert.Equal(t, money.Cents(2200), statement.Tax)
	assert.Equal(t, money.Cents(24200), statement.Total)
	assert.Equal(t, "242.00", money.Format(statement.Total))
}

func TestComputeWithAddOnsAndDeposit(t *testing.T) {
	checkIn := time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC)

	statement := billing.Compute(billing.Input{
		RateCents:   8000,
		CheckIn:     checkIn,
		CheckOut:    checkIn.Add(48 * time.Hour),
		Incidentals: []money.Cents{1200, 800},
		AddOns:      []money.Cents{3000},
		TaxRateBps:  1000,
		AmountPaid:  5000,
	})

	assert.Equal(t, 2, statement.Nights)
	assert.Equal(t, money.Cents(16000), statement.RoomCharge)
	assert.Equal(t, money.Cents(2000), statement.IncidentalTotal)
	assert.Equal(t, money.Cents(3000), statement.AddOnTotal)
	assert.Equal(t, money.Cents(21000), statement.Subtotal)
	assert.Equal(t, money.Cents(2100), statement.Tax)
	assert.Equal(t, money.Cents(23100), statement.Total)
	assert.Equal(t, money.Cents(18100), statement.BalanceDue)
}

func TestComputeIsDeterministic(t *testing.T) {
	checkIn := time.Date(2025, time.June, 1, 11, 0, 0, 0, time.UTC)

	in := billing.Input{
		RateCents:   10000,
		CheckIn:     checkIn,
		CheckOut:    checkIn.Add(26 * time.Hour),
		Incidentals: []money.Cents{2000},
		TaxRateBps:  1000,
	}

	first := billing.Compute(in)

	for range 100 {
		assert.Equal(t, first, billing.Compute(in))
	}
}
