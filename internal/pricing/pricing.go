package pricing

import (
	"math"
	"strings"
)

// Cycle is the recurrence period of a plan price.
type Cycle string

const (
	CycleMonthly   Cycle = "monthly"
	CycleQuarterly Cycle = "quarterly"
	CycleYearly    Cycle = "yearly"
	CycleOneTime   Cycle = "one_time"
)

func ParseCycle(value string) (Cycle, bool) {
	switch Cycle(strings.ToLower(strings.TrimSpace(value))) {
	case CycleMonthly:
		return CycleMonthly, true
	case CycleQuarterly:
		return CycleQuarterly, true
	case CycleYearly:
		return CycleYearly, true
	case CycleOneTime:
		return CycleOneTime, true
	default:
		return "", false
	}
}

// EffectiveCycle resolves the cycle used for a transition: the caller override
// when present, else the plan's own cycle, else monthly.
func EffectiveCycle(override, planCycle string) Cycle {
	if cycle, ok := ParseCycle(override); ok {
		return cycle
	}
	if cycle, ok := ParseCycle(planCycle); ok {
		return cycle
	}
	return CycleMonthly
}

// Canonical rounds a nominal price to two decimals, half up. Non-finite input
// degrades to zero instead of failing the transition.
func Canonical(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return round2(amount)
}

// MonthlyEquivalent converts a canonical price into its per-month figure:
// yearly prices divide by 12, quarterly by 3, everything else is the price itself.
func MonthlyEquivalent(amount float64, cycle Cycle) float64 {
	amount = Canonical(amount)
	switch cycle {
	case CycleYearly:
		return round2(amount / 12)
	case CycleQuarterly:
		return round2(amount / 3)
	default:
		return round2(amount)
	}
}

// halfUpEpsilon absorbs the binary-representation error of decimal midpoints:
// 999.995*100 is stored as 99999.4999..., which a bare floor(x+0.5) would
// round down even though the decimal value is exactly on the midpoint.
const halfUpEpsilon = 1e-9

func round2(x float64) float64 {
	if x < 0 {
		return -round2(-x)
	}
	return math.Floor(x*100+0.5+halfUpEpsilon) / 100
}
