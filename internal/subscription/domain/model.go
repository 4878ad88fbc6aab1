package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusPending   SubscriptionStatus = "pending"
)

// IsActive compares case-insensitively; legacy rows carry mixed-case statuses.
func (s SubscriptionStatus) IsActive() bool {
	return strings.EqualFold(string(s), string(SubscriptionStatusActive))
}

// TenantSubscription is the single tenant-wide bundle subscription.
// At most one row exists per tenant; purchases upsert it in place and the
// payment ledger carries the history.
type TenantSubscription struct {
	ID                 snowflake.ID       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	TenantID           snowflake.ID       `json:"tenant_id" gorm:"not null;uniqueIndex"`
	PlanID             snowflake.ID       `json:"plan_id" gorm:"not null"`
	Status             SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null"`
	Price              float64            `json:"price" gorm:"type:numeric(12,2);not null"`
	MonthlyPrice       float64            `json:"monthly_price" gorm:"type:numeric(12,2);not null"`
	BillingCycle       string             `json:"billing_cycle" gorm:"type:varchar(20);not null"`
	StartedAt          time.Time          `json:"started_at" gorm:"not null"`
	NextBillingDate    *time.Time         `json:"next_billing_date"`
	ExpiresAt          *time.Time         `json:"expires_at"`
	CancelledAt        *time.Time         `json:"cancelled_at"`
	CancellationReason *string            `json:"cancellation_reason" gorm:"type:text"`
	Metadata           datatypes.JSONMap  `json:"metadata" gorm:"type:jsonb"`
	CreatedAt          time.Time          `json:"created_at" gorm:"not null"`
	UpdatedAt          time.Time          `json:"updated_at" gorm:"not null"`
}

func (TenantSubscription) TableName() string { return "tenant_subscriptions" }

// ProductSubscription is a per-product add-on. At most one row exists per
// (tenant, product key) pair.
type ProductSubscription struct {
	ID           snowflake.ID       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	TenantID     snowflake.ID       `json:"tenant_id" gorm:"not null;uniqueIndex:idx_product_subscriptions_tenant_product"`
	ProductKey   string             `json:"product_key" gorm:"type:varchar(50);not null;uniqueIndex:idx_product_subscriptions_tenant_product"`
	PlanID       snowflake.ID       `json:"plan_id" gorm:"not null"`
	Status       SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null"`
	Price        float64            `json:"price" gorm:"type:numeric(12,2);not null"`
	BillingCycle string             `json:"billing_cycle" gorm:"type:varchar(20);not null"`
	StartedAt    time.Time          `json:"started_at" gorm:"not null"`
	ExpiresAt    *time.Time         `json:"expires_at"`
	Metadata     datatypes.JSONMap  `json:"metadata" gorm:"type:jsonb"`
	CreatedAt    time.Time          `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time          `json:"updated_at" gorm:"not null"`
}

func (ProductSubscription) TableName() string { return "product_subscriptions" }
