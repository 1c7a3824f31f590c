// Package billing computes the final statement for a stay. It is pure
// arithmetic over integer minor units so the same inputs always produce the
// same invoice totals.
package billing

import (
	"lodge/shared/money"
	"time"
)

const nightDuration = 24 * time.Hour

// Statement is the priced breakdown of a stay at checkout time.
type Statement struct {
	Nights          int
	RoomCharge      money.Cents
	IncidentalTotal money.Cents
	AddOnTotal      money.Cents
	Subtotal        money.Cents
	Tax             money.Cents
	Total           money.Cents
	BalanceDue      money.Cents
}

// Nights bills every started 24-hour period as a full night. A stay shorter
// than one night still bills one.
func Nights(checkIn, checkOut time.Time) int {
	if !checkIn.Before(checkOut) {
		return 1
	}

	nights := int((checkOut.Sub(checkIn) + nightDuration - 1) / nightDuration)
	if nights < 1 {
		return 1
	}

	return nights
}

type Input struct {
	RateCents   money.Cents
	CheckIn     time.Time
	CheckOut    time.Time
	Incidentals []money.Cents
	AddOns      []money.Cents
	TaxRateBps  int64
	AmountPaid  money.Cents
}

// Compute prices the stay. Tax applies to the full subtotal, room and
// incidentals and add-ons alike, rounded half up at the total.
func Compute(in Input) Statement {
	nights := Nights(in.CheckIn, in.CheckOut)

	roomCharge := in.RateCents * money.Cents(nights)
	incidentalTotal := money.Sum(in.Incidentals...)
	addOnTotal := money.Sum(in.AddOns...)

	subtotal := roomCharge + incidentalTotal + addOnTotal
	tax := money.MulBps(subtotal, in.TaxRateBps)
	total := subtotal + tax

	return Statement{
		Nights:          nights,
		RoomCharge:      roomCharge,
		IncidentalTotal: incidentalTotal,
		AddOnTotal:      addOnTotal,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		BalanceDue:      total - in.AmountPaid,
	}
}
