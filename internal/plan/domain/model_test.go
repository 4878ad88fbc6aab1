package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNormalizeFeatures(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, NormalizeFeatures(datatypes.JSON(`["a","b"]`)))

	// Legacy rows hold a JSON string wrapping the array.
	require.Equal(t, []string{"a"}, NormalizeFeatures(datatypes.JSON(`"[\"a\"]"`)))

	require.Empty(t, NormalizeFeatures(nil))
	require.Empty(t, NormalizeFeatures(datatypes.JSON(`{"not":"a list"}`)))
	require.Empty(t, NormalizeFeatures(datatypes.JSON(`"plain text"`)))
}

func TestIsProductScoped(t *testing.T) {
	platform := ScopePlatform
	moneyLoan := "money_loan"
	empty := ""

	require.False(t, Plan{}.IsProductScoped())
	require.False(t, Plan{ProductType: &platform}.IsProductScoped())
	require.False(t, Plan{ProductType: &empty}.IsProductScoped())
	require.True(t, Plan{ProductType: &moneyLoan}.IsProductScoped())
}
