package service

import (
	"context"

	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	tenantdomain "github.com/loanflowlabs/loanflow/internal/tenant/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// applyWritePlan performs the resolved multi-record update. It runs entirely
// on the caller's transaction so the subscription upsert, the tenant label
// update, the cascade reactivation and the ledger append commit together.
func (s *Service) applyWritePlan(ctx context.Context, tx *gorm.DB, wp writePlan) error {
	if wp.scope.IsProductAddOn() {
		return s.writeProductSubscription(ctx, tx, wp)
	}
	return s.writeTenantSubscription(ctx, tx, wp)
}

func (s *Service) writeProductSubscription(ctx context.Context, tx *gorm.DB, wp writePlan) error {
	productKey, _ := wp.scope.Product()

	if existing := wp.existingProductSub; existing != nil {
		existing.PlanID = wp.plan.ID
		existing.Status = subscriptiondomain.SubscriptionStatusActive
		existing.Price = wp.price
		existing.BillingCycle = string(wp.cycle)
		existing.StartedAt = wp.now
		existing.ExpiresAt = nil
		existing.UpdatedAt = wp.now
		return s.repo.UpdateProduct(ctx, tx, existing)
	}

	return s.repo.InsertProduct(ctx, tx, &subscriptiondomain.ProductSubscription{
		ID:           s.genID.Generate(),
		TenantID:     wp.tenant.ID,
		ProductKey:   productKey,
		PlanID:       wp.plan.ID,
		Status:       subscriptiondomain.SubscriptionStatusActive,
		Price:        wp.price,
		BillingCycle: string(wp.cycle),
		StartedAt:    wp.now,
		ExpiresAt:    nil,
		Metadata:     datatypes.JSONMap{},
		CreatedAt:    wp.now,
		UpdatedAt:    wp.now,
	})
}

func (s *Service) writeTenantSubscription(ctx context.Context, tx *gorm.DB, wp writePlan) error {
	if existing := wp.existingTenantSub; existing != nil {
		existing.PlanID = wp.plan.ID
		existing.Status = subscriptiondomain.SubscriptionStatusActive
		existing.Price = wp.price
		existing.MonthlyPrice = wp.monthlyPrice
		existing.BillingCycle = string(wp.cycle)
		existing.StartedAt = wp.now
		existing.NextBillingDate = wp.nextBillingDate
		existing.ExpiresAt = nil
		existing.CancelledAt = nil
		existing.CancellationReason = nil
		existing.UpdatedAt = wp.now
		if err := s.repo.Update(ctx, tx, existing); err != nil {
			return err
		}
	} else {
		if err := s.repo.Insert(ctx, tx, &subscriptiondomain.TenantSubscription{
			ID:              s.genID.Generate(),
			TenantID:        wp.tenant.ID,
			PlanID:          wp.plan.ID,
			Status:          subscriptiondomain.SubscriptionStatusActive,
			Price:           wp.price,
			MonthlyPrice:    wp.monthlyPrice,
			BillingCycle:    string(wp.cycle),
			StartedAt:       wp.now,
			NextBillingDate: wp.nextBillingDate,
			Metadata:        datatypes.JSONMap{},
			CreatedAt:       wp.now,
			UpdatedAt:       wp.now,
		}); err != nil {
			return err
		}
	}

	label := tenantdomain.PlanLabelCustom
	if !wp.plan.IsProductScoped() {
		label = tenantdomain.DerivePlanLabel(wp.plan.Name)
	}
	if err := s.tenantRepo.UpdatePlanLabel(ctx, tx, wp.tenant.ID, label, wp.now); err != nil {
		return err
	}

	// Cascade: a tenant-wide purchase reactivates the add-on rows of every
	// product the tenant has enabled. Missing rows are not created and the
	// cascade never deactivates anything.
	enabled := wp.tenant.EnabledProducts()
	productKeys := make([]string, 0, len(enabled))
	for _, key := range enabled {
		productKeys = append(productKeys, string(key))
	}
	return s.repo.ReactivateProducts(ctx, tx, wp.tenant.ID, productKeys, wp.now)
}
