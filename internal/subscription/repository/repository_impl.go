package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() subscriptiondomain.Repository {
	return &repo{}
}

// lockForUpdate adds FOR UPDATE on drivers that support row-level locks.
// sqlite (tests) serializes writers at the database level already.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (r *repo) FindByTenantForUpdate(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID) (*subscriptiondomain.TenantSubscription, error) {
	var sub subscriptiondomain.TenantSubscription
	err := lockForUpdate(tx.WithContext(ctx)).
		Where("tenant_id = ?", tenantID).
		Take(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repo) Insert(ctx context.Context, tx *gorm.DB, sub *subscriptiondomain.TenantSubscription) error {
	return tx.WithContext(ctx).Exec(
		`INSERT INTO tenant_subscriptions (
			id, tenant_id, plan_id, status, price, monthly_price, billing_cycle,
			started_at, next_billing_date, expires_at, cancelled_at,
			cancellation_reason, metadata, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID,
		sub.TenantID,
		sub.PlanID,
		sub.Status,
		sub.Price,
		sub.MonthlyPrice,
		sub.BillingCycle,
		sub.StartedAt,
		sub.NextBillingDate,
		sub.ExpiresAt,
		sub.CancelledAt,
		sub.CancellationReason,
		sub.Metadata,
		sub.CreatedAt,
		sub.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, tx *gorm.DB, sub *subscriptiondomain.TenantSubscription) error {
	return tx.WithContext(ctx).Exec(
		`UPDATE tenant_subscriptions
		 SET plan_id = ?, status = ?, price = ?, monthly_price = ?, billing_cycle = ?,
		     started_at = ?, next_billing_date = ?, expires_at = ?, cancelled_at = ?,
		     cancellation_reason = ?, updated_at = ?
		 WHERE id = ?`,
		sub.PlanID,
		sub.Status,
		sub.Price,
		sub.MonthlyPrice,
		sub.BillingCycle,
		sub.StartedAt,
		sub.NextBillingDate,
		sub.ExpiresAt,
		sub.CancelledAt,
		sub.CancellationReason,
		sub.UpdatedAt,
		sub.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*subscriptiondomain.TenantSubscription, error) {
	var sub subscriptiondomain.TenantSubscription
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repo) CancelByID(ctx context.Context, db *gorm.DB, id snowflake.ID, reason *string, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE tenant_subscriptions
		 SET status = ?, cancelled_at = ?, cancellation_reason = ?, updated_at = ?
		 WHERE id = ?`,
		subscriptiondomain.SubscriptionStatusCancelled,
		now,
		reason,
		now,
		id,
	).Error
}

func (r *repo) FindProductForUpdate(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID, productKey string) (*subscriptiondomain.ProductSubscription, error) {
	var sub subscriptiondomain.ProductSubscription
	err := lockForUpdate(tx.WithContext(ctx)).
		Where("tenant_id = ? AND product_key = ?", tenantID, productKey).
		Take(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repo) InsertProduct(ctx context.Context, tx *gorm.DB, sub *subscriptiondomain.ProductSubscription) error {
	return tx.WithContext(ctx).Exec(
		`INSERT INTO product_subscriptions (
			id, tenant_id, product_key, plan_id, status, price, billing_cycle,
			started_at, expires_at, metadata, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID,
		sub.TenantID,
		sub.ProductKey,
		sub.PlanID,
		sub.Status,
		sub.Price,
		sub.BillingCycle,
		sub.StartedAt,
		sub.ExpiresAt,
		sub.Metadata,
		sub.CreatedAt,
		sub.UpdatedAt,
	).Error
}

func (r *repo) UpdateProduct(ctx context.Context, tx *gorm.DB, sub *subscriptiondomain.ProductSubscription) error {
	return tx.WithContext(ctx).Exec(
		`UPDATE product_subscriptions
		 SET plan_id = ?, status = ?, price = ?, billing_cycle = ?, started_at = ?,
		     expires_at = ?, updated_at = ?
		 WHERE id = ?`,
		sub.PlanID,
		sub.Status,
		sub.Price,
		sub.BillingCycle,
		sub.StartedAt,
		sub.ExpiresAt,
		sub.UpdatedAt,
		sub.ID,
	).Error
}

func (r *repo) FindProduct(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, productKey string) (*subscriptiondomain.ProductSubscription, error) {
	var sub subscriptiondomain.ProductSubscription
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND product_key = ?", tenantID, productKey).
		Take(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repo) CancelProduct(ctx context.Context, db *gorm.DB, id snowflake.ID, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE product_subscriptions
		 SET status = ?, expires_at = ?, updated_at = ?
		 WHERE id = ?`,
		subscriptiondomain.SubscriptionStatusCancelled,
		now,
		now,
		id,
	).Error
}

func (r *repo) ReactivateProducts(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID, productKeys []string, now time.Time) error {
	if len(productKeys) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Exec(
		`UPDATE product_subscriptions
		 SET status = ?, expires_at = NULL, updated_at = ?
		 WHERE tenant_id = ? AND product_key IN ?`,
		subscriptiondomain.SubscriptionStatusActive,
		now,
		tenantID,
		productKeys,
	).Error
}
