package money_test

import (
	"lodge/shared/money"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulBps(t *testing.T) {
	tests := []struct {
		name     string
		amount   money.Cents
		bps      int64
		expected money.Cents
	}{
		{
			name:     "ten percent of 220.00",
			amount:   22000,
			bps:      1000,
			expected: 2200,
		},
		{
			name:     "twelve and a half percent of 100.00",
			amount:   10000,
			bps:      1250,
			expected: 1250,
		},
		{
			name:     "rounds half up",
			amount:   5,
			bps:      1000,
			expected: 1,
		},
		{
			name:     "rounds down below half",
			amount:   4,
			bps:      1000,
			expected: 0,
		},
		{
			name:     "zero rate",
			amount:   99999,
			bps:      0,
			expected: 0,
		},
		{
			name:     "negative amount rounds away from zero",
			amount:   -5,
			bps:      1000,
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.MulBps(tt.amount, tt.bps))
		})
	}
}

func TestMulBpsDeterministic(t *testing.T) {
	first := money.MulBps(22000, 1000)

	for range 100 {
		assert.Equal(t, first, money.MulBps(22000, 1000))
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, money.Cents(0), money.Sum())
	assert.Equal(t, money.Cents(150), money.Sum(100, 50))
	assert.Equal(t, money.Cents(-25), money.Sum(25, -50))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   money.Cents
		expected string
	}{
		{amount: 24200, expected: "242.00"},
		{amount: 5, expected: "0.05"},
		{amount: 0, expected: "0.00"},
		{amount: -1250, expected: "-12.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, money.Format(tt.amount))
	}
}
