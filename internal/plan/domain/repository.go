package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// PlanWithSubscribers pairs a catalog row with the number of tenant-wide
// subscriptions currently pointing at it.
type PlanWithSubscribers struct {
	Plan
	SubscriberCount int64 `gorm:"column:subscriber_count"`
}

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Plan, error)
	// FindActiveByID resolves a plan only when its status is active.
	FindActiveByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Plan, error)
	List(ctx context.Context, db *gorm.DB) ([]PlanWithSubscribers, error)
}
