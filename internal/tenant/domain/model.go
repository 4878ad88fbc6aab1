package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

var ErrTenantNotFound = errors.New("tenant not found")

// ProductKey identifies one of the lending products a tenant can enable.
type ProductKey string

const (
	ProductMoneyLoan ProductKey = "money_loan"
	ProductBNPL      ProductKey = "bnpl"
	ProductPawnshop  ProductKey = "pawnshop"
)

func AllProducts() []ProductKey {
	return []ProductKey{ProductMoneyLoan, ProductBNPL, ProductPawnshop}
}

// Plan labels shown on the tenant record. Derived, not authoritative.
const (
	PlanLabelStarter      = "starter"
	PlanLabelProfessional = "professional"
	PlanLabelEnterprise   = "enterprise"
	PlanLabelCustom       = "custom"
)

// DerivePlanLabel maps a purchased plan name onto the tenant's plan label.
// Matching is by case-insensitive substring, first match wins:
// enterprise, then pro, then starter/basic, else custom.
func DerivePlanLabel(planName string) string {
	normalized := strings.ToLower(planName)

	if strings.Contains(normalized, "enterprise") {
		return PlanLabelEnterprise
	}
	if strings.Contains(normalized, "pro") {
		return PlanLabelProfessional
	}
	if strings.Contains(normalized, "starter") || strings.Contains(normalized, "basic") {
		return PlanLabelStarter
	}
	return PlanLabelCustom
}

type Tenant struct {
	ID               snowflake.ID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name             string       `json:"name" gorm:"type:varchar(255);not null"`
	Subdomain        *string      `json:"subdomain" gorm:"type:varchar(100);uniqueIndex"`
	Plan             string       `json:"plan" gorm:"type:varchar(50);not null;default:custom"`
	Status           string       `json:"status" gorm:"type:varchar(20);not null;default:active"`
	MaxUsers         *int64       `json:"max_users"`
	MoneyLoanEnabled bool         `json:"money_loan_enabled" gorm:"column:money_loan_enabled;not null;default:false"`
	BNPLEnabled      bool         `json:"bnpl_enabled" gorm:"column:bnpl_enabled;not null;default:false"`
	PawnshopEnabled  bool         `json:"pawnshop_enabled" gorm:"column:pawnshop_enabled;not null;default:false"`
	CreatedAt        time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"not null"`
}

func (Tenant) TableName() string { return "tenants" }

// EnabledProducts lists the products whose flags are switched on, in the
// canonical product order.
func (t Tenant) EnabledProducts() []ProductKey {
	enabled := make([]ProductKey, 0, 3)
	if t.MoneyLoanEnabled {
		enabled = append(enabled, ProductMoneyLoan)
	}
	if t.BNPLEnabled {
		enabled = append(enabled, ProductBNPL)
	}
	if t.PawnshopEnabled {
		enabled = append(enabled, ProductPawnshop)
	}
	return enabled
}
