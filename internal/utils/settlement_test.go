package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name     string
		deposit  int64
		pending  int64
		damage   int64
		other    int64
		expected int64
	}{
		{"Refund after deductions", 500000, 120000, 30000, 0, 350000},
		{"Negative when owed exceeds deposit", 200000, 250000, 0, 0, -50000},
		{"Full refund with no deductions", 500000, 0, 0, 0, 500000},
		{"Zero deposit", 0, 100000, 0, 0, -100000},
		{"All deduction kinds", 500000, 100000, 50000, 25000, 325000},
		{"Exactly zero", 300000, 200000, 100000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeSettlement(tt.deposit, tt.pending, tt.damage, tt.other)
			assert.Equal(t, tt.expected, b.FinalAmountCents)
			assert.Equal(t, tt.deposit, b.DepositCents)
			assert.Equal(t, tt.pending, b.PendingRentCents)
		})
	}
}

func TestStayDuration(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		assert.NoError(t, err)
		return d
	}

	tests := []struct {
		name    string
		moveIn  string
		moveOut string
		months  int
		days    int
	}{
		{"Single day", "2024-01-15", "2024-01-15", 0, 1},
		{"Full month inclusive", "2024-01-01", "2024-01-31", 0, 31},
		{"Across month boundary", "2024-01-15", "2024-02-14", 0, 31},
		{"One month and a day", "2024-01-15", "2024-02-15", 1, 1},
		{"Leap February", "2024-02-01", "2024-02-29", 0, 29},
		{"Year span", "2023-06-01", "2024-06-01", 12, 1},
		{"Move-out before move-in", "2024-03-01", "2024-02-01", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, days := StayDuration(date(tt.moveIn), date(tt.moveOut))
			assert.Equal(t, tt.months, months)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "3500.00", FormatCents(350000))
	assert.Equal(t, "-500.00", FormatCents(-50000))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "12.34", FormatCents(1234))
}
