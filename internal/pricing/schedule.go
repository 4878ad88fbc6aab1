package pricing

import (
	"time"
)

// NextBillingDate derives the next billing instant from an anchor and a cycle.
// One-time purchases have no next billing date.
//
// Calendar arithmetic follows time.AddDate, which normalizes month-length
// overflow: Jan 31 plus one month lands in early March rather than being
// clamped to the last day of February.
func NextBillingDate(anchor time.Time, cycle Cycle) *time.Time {
	var next time.Time
	switch cycle {
	case CycleMonthly:
		next = anchor.AddDate(0, 1, 0)
	case CycleQuarterly:
		next = anchor.AddDate(0, 3, 0)
	case CycleYearly:
		next = anchor.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &next
}
