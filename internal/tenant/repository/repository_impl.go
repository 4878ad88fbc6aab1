package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	tenantdomain "github.com/loanflowlabs/loanflow/internal/tenant/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() tenantdomain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*tenantdomain.Tenant, error) {
	var t tenantdomain.Tenant
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, subdomain, plan, status, max_users,
		 money_loan_enabled, bnpl_enabled, pawnshop_enabled, created_at, updated_at
		 FROM tenants WHERE id = ?`,
		id,
	).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	if t.ID == 0 {
		return nil, nil
	}
	return &t, nil
}

func (r *repo) UpdatePlanLabel(ctx context.Context, db *gorm.DB, id snowflake.ID, label string, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE tenants SET plan = ?, updated_at = ? WHERE id = ?`,
		label,
		now,
		id,
	).Error
}
