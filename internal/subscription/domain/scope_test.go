package domain

import (
	"testing"

	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	"github.com/stretchr/testify/require"
)

func TestScopeForPlan(t *testing.T) {
	platform := plandomain.ScopePlatform
	moneyLoan := "money_loan"

	scope := ScopeForPlan(plandomain.Plan{})
	require.False(t, scope.IsProductAddOn())
	require.Equal(t, "platform", scope.LedgerProductKey())

	scope = ScopeForPlan(plandomain.Plan{ProductType: &platform})
	require.False(t, scope.IsProductAddOn())

	scope = ScopeForPlan(plandomain.Plan{ProductType: &moneyLoan})
	require.True(t, scope.IsProductAddOn())
	key, ok := scope.Product()
	require.True(t, ok)
	require.Equal(t, "money_loan", key)
	require.Equal(t, "money_loan", scope.LedgerProductKey())
}

func TestSubscriptionStatusIsActive(t *testing.T) {
	require.True(t, SubscriptionStatus("active").IsActive())
	require.True(t, SubscriptionStatus("Active").IsActive())
	require.True(t, SubscriptionStatus("ACTIVE").IsActive())
	require.False(t, SubscriptionStatus("cancelled").IsActive())
	require.False(t, SubscriptionStatus("").IsActive())
}
