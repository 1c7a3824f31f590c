package model_test

import (
	"lodge/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{name: "reserved to occupied", from: model.StatusReserved, to: model.StatusOccupied, allowed: true},
		{name: "reserved to cancelled", from: model.StatusReserved, to: model.StatusCancelled, allowed: true},
		{name: "occupied to settled", from: model.StatusOccupied, to: model.StatusSettled, allowed: true},
		{name: "occupied to cancelled is illegal", from: model.StatusOccupied, to: model.StatusCancelled, allowed: false},
		{name: "reserved to settled skips check-in", from: model.StatusReserved, to: model.StatusSettled, allowed: false},
		{name: "settled is terminal", from: model.StatusSettled, to: model.StatusOccupied, allowed: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusReserved, allowed: false},
		{name: "unknown status", from: "unknown", to: model.StatusOccupied, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2025, time.June, d, hour, 0, 0, 0, time.UTC)
	}

	booking := model.Booking{
		CheckIn:          day(1, 11),
		ExpectedCheckOut: day(3, 11),
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{name: "identical interval", start: day(1, 11), end: day(3, 11), overlaps: true},
		{name: "contained interval", start: day(2, 0), end: day(2, 12), overlaps: true},
		{name: "partial overlap at start", start: day(2, 0), end: day(5, 0), overlaps: true},
		{name: "touching end does not conflict", start: day(3, 11), end: day(5, 11), overlaps: false},
		{name: "touching start does not conflict", start: day(1, 0), end: day(1, 11), overlaps: false},
		{name: "disjoint after", start: day(4, 0), end: day(6, 0), overlaps: false},
		{name: "disjoint before", start: day(1, 0), end: day(1, 10), overlaps: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, booking.Overlaps(tt.start, tt.end))
		})
	}
}
