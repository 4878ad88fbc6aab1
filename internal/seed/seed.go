package seed

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/loanflowlabs/loanflow/internal/clock"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type catalogPlan struct {
	Name         string
	Description  string
	Price        float64
	BillingCycle string
	Features     []string
	ProductType  *string
	SortOrder    int
	IsFeatured   bool
}

func productType(key string) *string { return &key }

func defaultCatalog() []catalogPlan {
	return []catalogPlan{
		{
			Name:         "Starter Plan",
			Description:  "Entry bundle for small lending teams",
			Price:        999.00,
			BillingCycle: "monthly",
			Features:     []string{"borrower_management", "basic_reports"},
			SortOrder:    1,
		},
		{
			Name:         "Pro Plan",
			Description:  "Full bundle with reporting and integrations",
			Price:        2499.00,
			BillingCycle: "monthly",
			Features:     []string{"borrower_management", "advanced_reports", "api_access"},
			SortOrder:    2,
			IsFeatured:   true,
		},
		{
			Name:         "Enterprise Plan",
			Description:  "All products with priority support",
			Price:        4999.00,
			BillingCycle: "monthly",
			Features:     []string{"borrower_management", "advanced_reports", "api_access", "priority_support"},
			SortOrder:    3,
		},
		{
			Name:         "Money Loan Add-on",
			Description:  "Cash loan origination and collection",
			Price:        500.00,
			BillingCycle: "monthly",
			Features:     []string{"loan_origination", "collections"},
			ProductType:  productType("money_loan"),
			SortOrder:    10,
		},
		{
			Name:         "BNPL Add-on",
			Description:  "Buy-now-pay-later checkout",
			Price:        750.00,
			BillingCycle: "monthly",
			Features:     []string{"merchant_checkout", "installments"},
			ProductType:  productType("bnpl"),
			SortOrder:    11,
		},
		{
			Name:         "Pawnshop Add-on",
			Description:  "Pawn ticket and appraisal workflows",
			Price:        300.00,
			BillingCycle: "monthly",
			Features:     []string{"appraisals", "pawn_tickets"},
			ProductType:  productType("pawnshop"),
			SortOrder:    12,
		},
	}
}

// EnsurePlanCatalog seeds the default plan catalog. Existing plans are matched
// by name and left untouched, so re-running is safe and operator edits stick.
func EnsurePlanCatalog(db *gorm.DB, node *snowflake.Node, clk clock.Clock) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed id generator is required")
	}
	if clk == nil {
		return errors.New("seed clock is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range defaultCatalog() {
			if err := ensurePlanTx(ctx, tx, node, clk, entry); err != nil {
				return err
			}
		}
		return nil
	})
}

func ensurePlanTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, clk clock.Clock, entry catalogPlan) error {
	var count int64
	if err := tx.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM subscription_plans WHERE name = ?`, entry.Name).
		Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	features, err := json.Marshal(entry.Features)
	if err != nil {
		return err
	}

	now := clk.Now(ctx).UTC()
	description := entry.Description
	plan := plandomain.Plan{
		ID:           node.Generate(),
		Name:         entry.Name,
		Description:  &description,
		Price:        entry.Price,
		BillingCycle: entry.BillingCycle,
		Features:     datatypes.JSON(features),
		Status:       plandomain.PlanStatusActive,
		IsFeatured:   entry.IsFeatured,
		ProductType:  entry.ProductType,
		SortOrder:    entry.SortOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return tx.WithContext(ctx).Create(&plan).Error
}
