package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() plandomain.Repository {
	return &repo{}
}

const planColumns = `id, name, description, price, billing_cycle, features,
	 max_users, max_storage_gb, status, trial_days, is_featured, custom_pricing,
	 product_type, sort_order, created_at, updated_at`

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*plandomain.Plan, error) {
	var p plandomain.Plan
	err := db.WithContext(ctx).Raw(
		`SELECT `+planColumns+` FROM subscription_plans WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindActiveByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*plandomain.Plan, error) {
	var p plandomain.Plan
	err := db.WithContext(ctx).Raw(
		`SELECT `+planColumns+` FROM subscription_plans WHERE id = ? AND status = ?`,
		id,
		plandomain.PlanStatusActive,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]plandomain.PlanWithSubscribers, error) {
	var items []plandomain.PlanWithSubscribers
	err := db.WithContext(ctx).Raw(
		`SELECT sp.id, sp.name, sp.description, sp.price, sp.billing_cycle, sp.features,
		 sp.max_users, sp.max_storage_gb, sp.status, sp.trial_days, sp.is_featured,
		 sp.custom_pricing, sp.product_type, sp.sort_order, sp.created_at, sp.updated_at,
		 COALESCE((SELECT COUNT(*) FROM tenant_subscriptions ts WHERE ts.plan_id = sp.id), 0) AS subscriber_count
		 FROM subscription_plans sp
		 ORDER BY sp.sort_order ASC, sp.created_at DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
