package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidPlanID        = errors.New("plan id must be a positive integer")
	ErrInvalidProductKey    = errors.New("product key is required")
)

// CreateOrUpdateRequest is the inbound transition contract.
type CreateOrUpdateRequest struct {
	TenantID      int64
	UserID        *int64
	PlanID        int64
	BillingCycle  string
	PaymentMethod string
}

// TransitionReceipt summarizes a committed transition.
type TransitionReceipt struct {
	PlanID          int64      `json:"plan_id"`
	PlanName        string     `json:"plan_name"`
	ProductType     *string    `json:"product_type"`
	TransitionKind  string     `json:"transition_kind"`
	BillingCycle    string     `json:"billing_cycle"`
	Amount          float64    `json:"amount"`
	TransactionID   string     `json:"transaction_id"`
	NextBillingDate *time.Time `json:"next_billing_date"`
}

// SubscriptionView is one display-ready row of a tenant's subscription list,
// joined with its plan metadata.
type SubscriptionView struct {
	ID                 int64      `json:"id"`
	SubscriptionID     int64      `json:"subscription_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Price              float64    `json:"price"`
	BillingCycle       string     `json:"billing_cycle"`
	ProductType        *string    `json:"product_type"`
	MaxUsers           *int64     `json:"max_users"`
	MaxStorageGB       *int64     `json:"max_storage_gb"`
	Features           []string   `json:"features"`
	IsActive           bool       `json:"is_active"`
	IsRecommended      bool       `json:"is_recommended"`
	CreatedAt          *time.Time `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
	StartedAt          *time.Time `json:"started_at"`
	ExpiresAt          *time.Time `json:"expires_at"`
	SubscriptionStatus string     `json:"subscription_status"`
}

type TenantSubscriptionsResponse struct {
	Subscriptions   []SubscriptionView `json:"subscriptions"`
	EnabledProducts []string           `json:"enabled_products"`
}

// OverviewRow is the admin billing projection across tenants.
type OverviewRow struct {
	ID                 int64      `json:"id"`
	TenantID           *int64     `json:"tenant_id"`
	TenantName         *string    `json:"tenant_name"`
	PlanID             *int64     `json:"plan_id"`
	PlanName           *string    `json:"plan_name"`
	PlanPrice          *float64   `json:"plan_price"`
	Status             string     `json:"status"`
	StartedAt          *time.Time `json:"started_at"`
	ExpiresAt          *time.Time `json:"expires_at"`
	NextBillingDate    *time.Time `json:"next_billing_date"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason *string    `json:"cancellation_reason"`
	BillingCycle       string     `json:"billing_cycle"`
	Price              *float64   `json:"price"`
}

type OverviewFilter struct {
	TenantID *int64
}

// ProductSubscriptionView is a product add-on joined with its plan snapshot.
type ProductSubscriptionView struct {
	ID           int64             `json:"id"`
	TenantID     int64             `json:"tenant_id"`
	ProductKey   string            `json:"product_key"`
	PlanID       *int64            `json:"plan_id"`
	Plan         *ProductPlanBrief `json:"plan"`
	Status       string            `json:"status"`
	Price        float64           `json:"price"`
	BillingCycle string            `json:"billing_cycle"`
	StartedAt    *time.Time        `json:"started_at"`
	ExpiresAt    *time.Time        `json:"expires_at"`
	CreatedAt    *time.Time        `json:"created_at"`
	UpdatedAt    *time.Time        `json:"updated_at"`
}

type ProductPlanBrief struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	BillingCycle string   `json:"billing_cycle"`
	Features     []string `json:"features"`
	ProductType  *string  `json:"product_type"`
	Status       string   `json:"status"`
}

type Service interface {
	// CreateOrUpdate applies one subscription transition atomically: resolve
	// the plan, classify new-vs-upgrade, upsert the scoped record, sync the
	// tenant, and append exactly one ledger entry.
	CreateOrUpdate(ctx context.Context, req CreateOrUpdateRequest) (TransitionReceipt, error)

	// GetCurrentTenantSubscriptions is the tenant-facing projection: enabled
	// product flags plus tenant-wide subscription rows joined with plans.
	GetCurrentTenantSubscriptions(ctx context.Context, tenantID int64) (TenantSubscriptionsResponse, error)

	ListOverview(ctx context.Context, filter OverviewFilter) ([]OverviewRow, error)
	Cancel(ctx context.Context, subscriptionID int64, reason string) (OverviewRow, error)

	ListProductSubscriptions(ctx context.Context, tenantID int64) ([]ProductSubscriptionView, error)
	UnsubscribeProduct(ctx context.Context, tenantID int64, productKey string) error
}
