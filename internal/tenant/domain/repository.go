package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Tenant, error)
	// UpdatePlanLabel rewrites the derived plan label after a tenant-wide purchase.
	UpdatePlanLabel(ctx context.Context, db *gorm.DB, id snowflake.ID, label string, now time.Time) error
}
