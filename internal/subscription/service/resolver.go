package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/loanflowlabs/loanflow/internal/ledger/domain"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	"github.com/loanflowlabs/loanflow/internal/pricing"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	tenantdomain "github.com/loanflowlabs/loanflow/internal/tenant/domain"
	"gorm.io/gorm"
)

// writePlan is the fully resolved outcome of a transition request: which
// record to touch, whether it is a new subscription or an upgrade, and the
// monetary figures to write. It is produced under the transaction's row lock
// so the classification cannot race a concurrent transition.
type writePlan struct {
	tenant tenantdomain.Tenant
	plan   plandomain.Plan
	scope  subscriptiondomain.Scope
	kind   ledgerdomain.TransitionKind

	price        float64
	monthlyPrice float64
	cycle        pricing.Cycle

	// nextBillingDate is set for tenant-wide transitions only; product
	// add-ons do not carry one.
	nextBillingDate *time.Time

	existingTenantSub  *subscriptiondomain.TenantSubscription
	existingProductSub *subscriptiondomain.ProductSubscription

	userID   *snowflake.ID
	provider string
	now      time.Time
}

func (s *Service) resolveTransition(
	ctx context.Context,
	tx *gorm.DB,
	tenant tenantdomain.Tenant,
	plan plandomain.Plan,
	req subscriptiondomain.CreateOrUpdateRequest,
) (writePlan, error) {
	now := s.clock.Now(ctx)
	price := pricing.Canonical(plan.Price)
	cycle := pricing.EffectiveCycle(req.BillingCycle, plan.BillingCycle)

	wp := writePlan{
		tenant:       tenant,
		plan:         plan,
		scope:        subscriptiondomain.ScopeForPlan(plan),
		kind:         ledgerdomain.TransitionSubscription,
		price:        price,
		monthlyPrice: pricing.MonthlyEquivalent(price, cycle),
		cycle:        cycle,
		provider:     req.PaymentMethod,
		now:          now,
	}
	if req.UserID != nil {
		userID := snowflake.ID(*req.UserID)
		wp.userID = &userID
	}

	if productKey, ok := wp.scope.Product(); ok {
		existing, err := s.repo.FindProductForUpdate(ctx, tx, tenant.ID, productKey)
		if err != nil {
			return writePlan{}, err
		}
		wp.existingProductSub = existing
		if existing != nil && existing.Status.IsActive() {
			wp.kind = ledgerdomain.TransitionUpgrade
		}
		return wp, nil
	}

	existing, err := s.repo.FindByTenantForUpdate(ctx, tx, tenant.ID)
	if err != nil {
		return writePlan{}, err
	}
	wp.existingTenantSub = existing
	if existing != nil && existing.Status.IsActive() {
		wp.kind = ledgerdomain.TransitionUpgrade
	}
	wp.nextBillingDate = pricing.NextBillingDate(now, cycle)
	return wp, nil
}
