package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// FindByTenantForUpdate reads the tenant-wide row under a row-level lock so
	// the upgrade classification and the following write serialize against
	// concurrent transitions for the same tenant.
	FindByTenantForUpdate(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID) (*TenantSubscription, error)
	Insert(ctx context.Context, tx *gorm.DB, sub *TenantSubscription) error
	Update(ctx context.Context, tx *gorm.DB, sub *TenantSubscription) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*TenantSubscription, error)
	CancelByID(ctx context.Context, db *gorm.DB, id snowflake.ID, reason *string, now time.Time) error

	FindProductForUpdate(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID, productKey string) (*ProductSubscription, error)
	InsertProduct(ctx context.Context, tx *gorm.DB, sub *ProductSubscription) error
	UpdateProduct(ctx context.Context, tx *gorm.DB, sub *ProductSubscription) error
	FindProduct(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, productKey string) (*ProductSubscription, error)
	CancelProduct(ctx context.Context, db *gorm.DB, id snowflake.ID, now time.Time) error

	// ReactivateProducts flips existing add-on rows for the given product keys
	// back to active. It never creates rows and never touches price or plan.
	ReactivateProducts(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID, productKeys []string, now time.Time) error
}
