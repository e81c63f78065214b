package utils

import (
	"fmt"
	"time"
)

// SettlementBreakdown itemizes a final settlement computation.
type SettlementBreakdown struct {
	DepositCents         int64
	PendingRentCents     int64
	DamageDeductionCents int64
	OtherChargesCents    int64
	FinalAmountCents     int64
}

// ComputeSettlement computes the final settlement amount from the deposit
// and the deductions. The result is never clamped: a negative final amount
// means the resident owes the balance.
func ComputeSettlement(depositCents, pendingRentCents, damageCents, otherCents int64) SettlementBreakdown {
	return SettlementBreakdown{
		DepositCents:         depositCents,
		PendingRentCents:     pendingRentCents,
		DamageDeductionCents: damageCents,
		OtherChargesCents:    otherCents,
		FinalAmountCents:     depositCents - pendingRentCents - damageCents - otherCents,
	}
}

// StayDuration returns the length of a stay in whole months plus leftover
// days, both dates inclusive.
func StayDuration(moveIn, moveOut time.Time) (months, days int) {
	if moveOut.Before(moveIn) {
		return 0, 0
	}

	months = (moveOut.Year()-moveIn.Year())*12 + int(moveOut.Month()) - int(moveIn.Month())
	days = moveOut.Day() - moveIn.Day() + 1

	if days <= 0 {
		months--
		prev := moveOut.AddDate(0, -1, 0)
		days += daysInMonth(prev.Year(), int(prev.Month()))
	}
	if months < 0 {
		months = 0
	}
	return months, days
}

// FormatCents renders an amount of cents as a decimal money string,
// preserving the sign.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func daysInMonth(year, month int) int {
	if month == 2 {
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}
