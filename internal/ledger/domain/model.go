package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	// Currency is fixed for the whole billing surface.
	Currency = "PHP"

	// StatusCompleted is the only status synchronous transitions produce.
	StatusCompleted = "completed"

	ProviderManual = "manual"

	// ScopePlatform is the product-key snapshot recorded for tenant-wide
	// transitions.
	ScopePlatform = "platform"
)

// TransitionKind classifies a billing transition.
type TransitionKind string

const (
	TransitionSubscription TransitionKind = "subscription"
	TransitionUpgrade      TransitionKind = "upgrade"
)

// PaymentLedgerEntry is one immutable row of the billing audit trail.
// Entries are appended inside the transition transaction and never updated.
type PaymentLedgerEntry struct {
	ID              snowflake.ID   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	TenantID        snowflake.ID   `json:"tenant_id" gorm:"not null;index"`
	TransactionID   string         `json:"transaction_id" gorm:"type:varchar(32);not null;uniqueIndex"`
	Amount          float64        `json:"amount" gorm:"type:numeric(12,2);not null"`
	Currency        string         `json:"currency" gorm:"type:varchar(3);not null"`
	Status          string         `json:"status" gorm:"type:varchar(20);not null"`
	Provider        string         `json:"provider" gorm:"type:varchar(100);not null"`
	ProcessedAt     time.Time      `json:"processed_at" gorm:"not null"`
	UserID          *snowflake.ID  `json:"user_id" gorm:"type:bigint"`
	PlanID          snowflake.ID   `json:"plan_id" gorm:"not null"`
	TransactionType TransitionKind `json:"transaction_type" gorm:"type:varchar(20);not null"`
	PlanName        string         `json:"plan_name" gorm:"type:varchar(255);not null"`
	ProductKey      string         `json:"product_key" gorm:"type:varchar(50);not null"`
	Description     string         `json:"description" gorm:"type:text;not null"`
	CreatedAt       time.Time      `json:"created_at" gorm:"not null"`
}

func (PaymentLedgerEntry) TableName() string { return "payment_ledger" }
