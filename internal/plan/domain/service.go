package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPlanNotFound = errors.New("subscription plan not found")
)

// Response is the display-ready shape of a catalog plan.
type Response struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	BillingCycle    string    `json:"billing_cycle"`
	Features        []string  `json:"features"`
	MaxUsers        *int64    `json:"max_users"`
	MaxStorageGB    *int64    `json:"max_storage_gb"`
	Status          string    `json:"status"`
	TrialDays       int       `json:"trial_days"`
	IsFeatured      bool      `json:"is_featured"`
	CustomPricing   bool      `json:"custom_pricing"`
	ProductType     *string   `json:"product_type"`
	SortOrder       int       `json:"sort_order"`
	SubscriberCount int64     `json:"subscriber_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Service interface {
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id int64) (Response, error)
}
