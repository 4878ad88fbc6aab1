package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// AppendRequest captures everything needed to record one transition.
type AppendRequest struct {
	TenantID   snowflake.ID
	UserID     *snowflake.ID
	PlanID     snowflake.ID
	PlanName   string
	Amount     float64
	Provider   string
	Kind       TransitionKind
	ProductKey string
	Cycle      string
	Now        time.Time
}

type Service interface {
	// Append writes exactly one ledger entry using the caller's transaction
	// handle so the entry commits or rolls back with the subscription writes.
	Append(ctx context.Context, tx *gorm.DB, req AppendRequest) (PaymentLedgerEntry, error)
	ListByTenant(ctx context.Context, tenantID snowflake.ID) ([]PaymentLedgerEntry, error)
}
