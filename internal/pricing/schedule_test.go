package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextBillingDate(t *testing.T) {
	anchor := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	next := NextBillingDate(anchor, CycleMonthly)
	require.NotNil(t, next)
	require.Equal(t, time.Date(2025, time.April, 15, 10, 30, 0, 0, time.UTC), *next)

	next = NextBillingDate(anchor, CycleQuarterly)
	require.NotNil(t, next)
	require.Equal(t, time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC), *next)

	next = NextBillingDate(anchor, CycleYearly)
	require.NotNil(t, next)
	require.Equal(t, time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC), *next)

	require.Nil(t, NextBillingDate(anchor, CycleOneTime))
}

func TestNextBillingDateMonthOverflowNormalizes(t *testing.T) {
	anchor := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	next := NextBillingDate(anchor, CycleMonthly)
	require.NotNil(t, next)
	// AddDate semantics: Jan 31 + 1 month normalizes past February's end.
	require.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), *next)
}
