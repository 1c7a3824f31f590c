package model

import (
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldRoomID           = "room_id"
	FieldGuestID          = "guest_id"
	FieldCheckIn          = "check_in"
	FieldExpectedCheckOut = "expected_check_out"
	FieldActualCheckOut   = "actual_check_out"
	FieldStatus           = "status"
	FieldPaymentMethod    = "payment_method"
	FieldPaymentStatus    = "payment_status"
	FieldDeposit          = "deposit_cents"
	FieldAmountPaid       = "amount_paid_cents"
	FieldPaymentRef       = "payment_ref"
	FieldPaymentAttempts  = "payment_attempts"
)

const (
	StatusReserved  = "reserved"
	StatusOccupied  = "occupied"
	StatusSettled   = "settled"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// transitions is the full set of legal lifecycle moves. Settled is only
// reachable through the checkout transaction; cancellation after check-in is
// not allowed because charges may already exist.
var transitions = map[string][]string{
	StatusReserved: {StatusOccupied, StatusCancelled},
	StatusOccupied: {StatusSettled},
}

func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// ActiveStatuses are the statuses whose rows occupy the room's interval
// index. Settled and cancelled rows release their interval by leaving this
// set.
var ActiveStatuses = []string{StatusReserved, StatusOccupied}

// Booking holds the stay interval [check_in, expected_check_out). Intervals
// are half-open: a checkout and a check-in at the same instant do not
// conflict.
type Booking struct {
	ID               string      `db:"id"`
	RoomID           string      `db:"room_id"`
	GuestID          string      `db:"guest_id"`
	CheckIn          time.Time   `db:"check_in"`
	ExpectedCheckOut time.Time   `db:"expected_check_out"`
	ActualCheckOut   *time.Time  `db:"actual_check_out"`
	Status           string      `db:"status"`
	PaymentMethod    string      `db:"payment_method"`
	PaymentStatus    string      `db:"payment_status"`
	DepositCents     money.Cents `db:"deposit_cents"`
	AmountPaidCents  money.Cents `db:"amount_paid_cents"`
	PaymentRef       string      `db:"payment_ref"`
	PaymentAttempts  int         `db:"payment_attempts"`
	gModel.Metadata
}

// Overlaps reports whether the booking's interval conflicts with
// [start, end) under half-open semantics.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.CheckIn.Before(end) && start.Before(b.ExpectedCheckOut)
}
