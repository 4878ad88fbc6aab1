package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	tenantdomain "github.com/loanflowlabs/loanflow/internal/tenant/domain"
	"github.com/loanflowlabs/loanflow/pkg/db"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type subscriptionViewRow struct {
	SubscriptionID     int64          `gorm:"column:subscription_id"`
	Status             string         `gorm:"column:status"`
	StartedAt          *time.Time     `gorm:"column:started_at"`
	ExpiresAt          *time.Time     `gorm:"column:expires_at"`
	PlanID             *int64         `gorm:"column:plan_id"`
	PlanName           *string        `gorm:"column:plan_name"`
	PlanDescription    *string        `gorm:"column:plan_description"`
	PlanPrice          *float64       `gorm:"column:plan_price"`
	PlanBillingCycle   *string        `gorm:"column:plan_billing_cycle"`
	ProductType        *string        `gorm:"column:product_type"`
	MaxUsers           *int64         `gorm:"column:max_users"`
	MaxStorageGB       *int64         `gorm:"column:max_storage_gb"`
	Features           datatypes.JSON `gorm:"column:features"`
	PlanStatus         *string        `gorm:"column:plan_status"`
	IsFeatured         *bool          `gorm:"column:is_featured"`
	PlanCreatedAt      *time.Time     `gorm:"column:plan_created_at"`
	PlanUpdatedAt      *time.Time     `gorm:"column:plan_updated_at"`
}

// GetCurrentTenantSubscriptions implements domain.Service. The subscription
// list degrades to empty when the billing tables have not been migrated yet;
// the enabled product flags come from the tenant row and stay accurate either
// way.
func (s *Service) GetCurrentTenantSubscriptions(ctx context.Context, tenantID int64) (subscriptiondomain.TenantSubscriptionsResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, snowflake.ID(tenantID))
	if err != nil {
		return subscriptiondomain.TenantSubscriptionsResponse{}, err
	}
	if tenant == nil {
		return subscriptiondomain.TenantSubscriptionsResponse{}, tenantdomain.ErrTenantNotFound
	}

	enabled := make([]string, 0, 3)
	for _, key := range tenant.EnabledProducts() {
		enabled = append(enabled, string(key))
	}

	var rows []subscriptionViewRow
	err = s.db.WithContext(ctx).Raw(`
		SELECT
			ts.id AS subscription_id,
			ts.status,
			ts.started_at,
			ts.expires_at,
			sp.id AS plan_id,
			sp.name AS plan_name,
			sp.description AS plan_description,
			sp.price AS plan_price,
			sp.billing_cycle AS plan_billing_cycle,
			sp.product_type,
			sp.max_users,
			sp.max_storage_gb,
			sp.features,
			sp.status AS plan_status,
			sp.is_featured,
			sp.created_at AS plan_created_at,
			sp.updated_at AS plan_updated_at
		FROM tenant_subscriptions ts
		LEFT JOIN subscription_plans sp ON sp.id = ts.plan_id
		WHERE ts.tenant_id = ?
		ORDER BY ts.started_at DESC
	`, tenantID).Scan(&rows).Error
	if err != nil {
		if db.IsSchemaMissing(err) {
			s.log.Warn("billing tables missing, returning empty subscription list",
				zap.Int64("tenant_id", tenantID))
			return subscriptiondomain.TenantSubscriptionsResponse{
				Subscriptions:   []subscriptiondomain.SubscriptionView{},
				EnabledProducts: enabled,
			}, nil
		}
		return subscriptiondomain.TenantSubscriptionsResponse{}, err
	}

	views := make([]subscriptiondomain.SubscriptionView, 0, len(rows))
	for _, row := range rows {
		view := subscriptiondomain.SubscriptionView{
			SubscriptionID:     row.SubscriptionID,
			StartedAt:          row.StartedAt,
			ExpiresAt:          row.ExpiresAt,
			SubscriptionStatus: row.Status,
			Features:           plandomain.NormalizeFeatures(row.Features),
			ProductType:        row.ProductType,
			MaxUsers:           row.MaxUsers,
			MaxStorageGB:       row.MaxStorageGB,
			CreatedAt:          row.PlanCreatedAt,
			UpdatedAt:          row.PlanUpdatedAt,
		}
		if row.PlanID != nil {
			view.ID = *row.PlanID
		}
		if row.PlanName != nil {
			view.Name = *row.PlanName
		}
		if row.PlanDescription != nil {
			view.Description = *row.PlanDescription
		}
		if row.PlanPrice != nil {
			view.Price = *row.PlanPrice
		}
		if row.PlanBillingCycle != nil {
			view.BillingCycle = *row.PlanBillingCycle
		}
		// Subscription status wins over plan status when present.
		switch {
		case row.Status != "":
			view.IsActive = subscriptiondomain.SubscriptionStatus(row.Status).IsActive()
		case row.PlanStatus != nil:
			view.IsActive = *row.PlanStatus == plandomain.PlanStatusActive
		}
		if row.IsFeatured != nil {
			view.IsRecommended = *row.IsFeatured
		}
		views = append(views, view)
	}

	return subscriptiondomain.TenantSubscriptionsResponse{
		Subscriptions:   views,
		EnabledProducts: enabled,
	}, nil
}

const overviewSelect = `
	SELECT
		ts.id,
		ts.tenant_id,
		t.name AS tenant_name,
		ts.plan_id,
		sp.name AS plan_name,
		sp.price AS plan_price,
		ts.status,
		ts.started_at,
		ts.expires_at,
		ts.next_billing_date,
		ts.cancelled_at,
		ts.cancellation_reason,
		ts.billing_cycle,
		ts.price
	FROM tenant_subscriptions ts
	LEFT JOIN tenants t ON t.id = ts.tenant_id
	LEFT JOIN subscription_plans sp ON sp.id = ts.plan_id
`

func (s *Service) ListOverview(ctx context.Context, filter subscriptiondomain.OverviewFilter) ([]subscriptiondomain.OverviewRow, error) {
	query := overviewSelect
	args := make([]interface{}, 0, 1)
	if filter.TenantID != nil {
		query += " WHERE ts.tenant_id = ?"
		args = append(args, *filter.TenantID)
	}
	query += " ORDER BY ts.started_at DESC"

	var rows []subscriptiondomain.OverviewRow
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		if db.IsSchemaMissing(err) {
			s.log.Warn("billing tables missing, returning empty overview")
			return []subscriptiondomain.OverviewRow{}, nil
		}
		return nil, err
	}
	if rows == nil {
		rows = []subscriptiondomain.OverviewRow{}
	}
	return rows, nil
}

func (s *Service) findOverviewRow(ctx context.Context, id snowflake.ID) (*subscriptiondomain.OverviewRow, error) {
	var rows []subscriptiondomain.OverviewRow
	query := overviewSelect + " WHERE ts.id = ?"
	if err := s.db.WithContext(ctx).Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

type productSubscriptionRow struct {
	ID               int64          `gorm:"column:id"`
	TenantID         int64          `gorm:"column:tenant_id"`
	ProductKey       string         `gorm:"column:product_key"`
	Status           string         `gorm:"column:status"`
	Price            float64        `gorm:"column:price"`
	BillingCycle     string         `gorm:"column:billing_cycle"`
	StartedAt        *time.Time     `gorm:"column:started_at"`
	ExpiresAt        *time.Time     `gorm:"column:expires_at"`
	CreatedAt        *time.Time     `gorm:"column:created_at"`
	UpdatedAt        *time.Time     `gorm:"column:updated_at"`
	PlanID           *int64         `gorm:"column:plan_id"`
	PlanName         *string        `gorm:"column:plan_name"`
	PlanDescription  *string        `gorm:"column:plan_description"`
	PlanPrice        *float64       `gorm:"column:plan_price"`
	PlanBillingCycle *string        `gorm:"column:plan_billing_cycle"`
	PlanFeatures     datatypes.JSON `gorm:"column:plan_features"`
	PlanProductType  *string        `gorm:"column:plan_product_type"`
	PlanStatus       *string        `gorm:"column:plan_status"`
}

func (s *Service) ListProductSubscriptions(ctx context.Context, tenantID int64) ([]subscriptiondomain.ProductSubscriptionView, error) {
	var rows []productSubscriptionRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			ps.id,
			ps.tenant_id,
			ps.product_key,
			ps.status,
			ps.price,
			ps.billing_cycle,
			ps.started_at,
			ps.expires_at,
			ps.created_at,
			ps.updated_at,
			sp.id AS plan_id,
			sp.name AS plan_name,
			sp.description AS plan_description,
			sp.price AS plan_price,
			sp.billing_cycle AS plan_billing_cycle,
			sp.features AS plan_features,
			sp.product_type AS plan_product_type,
			sp.status AS plan_status
		FROM product_subscriptions ps
		LEFT JOIN subscription_plans sp ON sp.id = ps.plan_id
		WHERE ps.tenant_id = ?
		ORDER BY ps.product_key ASC
	`, tenantID).Scan(&rows).Error
	if err != nil {
		if db.IsSchemaMissing(err) {
			return []subscriptiondomain.ProductSubscriptionView{}, nil
		}
		return nil, err
	}

	views := make([]subscriptiondomain.ProductSubscriptionView, 0, len(rows))
	for _, row := range rows {
		view := subscriptiondomain.ProductSubscriptionView{
			ID:           row.ID,
			TenantID:     row.TenantID,
			ProductKey:   row.ProductKey,
			PlanID:       row.PlanID,
			Status:       row.Status,
			Price:        row.Price,
			BillingCycle: row.BillingCycle,
			StartedAt:    row.StartedAt,
			ExpiresAt:    row.ExpiresAt,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		}
		if row.PlanID != nil && row.PlanName != nil {
			brief := &subscriptiondomain.ProductPlanBrief{
				ID:       *row.PlanID,
				Name:     *row.PlanName,
				Features: plandomain.NormalizeFeatures(row.PlanFeatures),
			}
			if row.PlanDescription != nil {
				brief.Description = *row.PlanDescription
			}
			if row.PlanPrice != nil {
				brief.Price = *row.PlanPrice
			}
			if row.PlanBillingCycle != nil {
				brief.BillingCycle = *row.PlanBillingCycle
			}
			if row.PlanStatus != nil {
				brief.Status = *row.PlanStatus
			}
			brief.ProductType = row.PlanProductType
			view.Plan = brief
		}
		views = append(views, view)
	}
	return views, nil
}
