package domain

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	PlanStatusActive   = "active"
	PlanStatusInactive = "inactive"
)

// ScopePlatform marks a plan as the tenant-wide bundle. Any other product type
// value scopes the plan to a single product add-on.
const ScopePlatform = "platform"

type Plan struct {
	ID            snowflake.ID   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name          string         `json:"name" gorm:"type:varchar(255);not null"`
	Description   *string        `json:"description" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"type:numeric(12,2);not null"`
	BillingCycle  string         `json:"billing_cycle" gorm:"type:varchar(20);not null;default:monthly"`
	Features      datatypes.JSON `json:"features" gorm:"type:jsonb"`
	MaxUsers      *int64         `json:"max_users"`
	MaxStorageGB  *int64         `json:"max_storage_gb" gorm:"column:max_storage_gb"`
	Status        string         `json:"status" gorm:"type:varchar(20);not null;default:active"`
	TrialDays     int            `json:"trial_days" gorm:"not null;default:0"`
	IsFeatured    bool           `json:"is_featured" gorm:"not null;default:false"`
	CustomPricing bool           `json:"custom_pricing" gorm:"not null;default:false"`
	ProductType   *string        `json:"product_type" gorm:"column:product_type;type:varchar(50)"`
	SortOrder     int            `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt     time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"not null"`
}

func (Plan) TableName() string { return "subscription_plans" }

// IsProductScoped reports whether the plan targets a single product add-on
// rather than the tenant-wide bundle.
func (p Plan) IsProductScoped() bool {
	return p.ProductType != nil && *p.ProductType != "" && *p.ProductType != ScopePlatform
}

// NormalizeFeatures coerces the stored feature column into a string slice.
// The column has historically held either a JSON array or a JSON-encoded
// string of one; anything unparsable degrades to an empty list.
func NormalizeFeatures(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var features []string
	if err := json.Unmarshal(raw, &features); err == nil {
		return features
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &features); err == nil {
			return features
		}
	}

	return []string{}
}
