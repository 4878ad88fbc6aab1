package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/loanflowlabs/loanflow/internal/config"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	pkgdb "github.com/loanflowlabs/loanflow/pkg/db"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const catalogCacheKey = "loanflow:plans:catalog"

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	repo     plandomain.Repository
	cache    *redis.Client
	cacheTTL time.Duration
}

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Config config.Config
	Repo   plandomain.Repository
	Cache  *redis.Client `optional:"true"`
}

func NewService(p ServiceParam) plandomain.Service {
	ttl := time.Duration(p.Config.Redis.PlanCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("plan.service"),
		repo:     p.Repo,
		cache:    p.Cache,
		cacheTTL: ttl,
	}
}

// List returns the catalog ordered for display. The result is cached briefly
// in redis when a client is configured; cache failures fall through to the
// database. A missing catalog table degrades to an empty list.
func (s *Service) List(ctx context.Context) ([]plandomain.Response, error) {
	if cached, ok := s.loadCachedCatalog(ctx); ok {
		return cached, nil
	}

	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		if pkgdb.IsSchemaMissing(err) {
			return []plandomain.Response{}, nil
		}
		return nil, err
	}

	resp := make([]plandomain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(item.Plan, item.SubscriberCount))
	}

	s.storeCachedCatalog(ctx, resp)
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id int64) (plandomain.Response, error) {
	p, err := s.repo.FindByID(ctx, s.db, snowflake.ID(id))
	if err != nil {
		if pkgdb.IsSchemaMissing(err) {
			return plandomain.Response{}, plandomain.ErrPlanNotFound
		}
		return plandomain.Response{}, err
	}
	if p == nil {
		return plandomain.Response{}, plandomain.ErrPlanNotFound
	}
	return toResponse(*p, 0), nil
}

func (s *Service) loadCachedCatalog(ctx context.Context) ([]plandomain.Response, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var resp []plandomain.Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, false
	}
	return resp, true
}

func (s *Service) storeCachedCatalog(ctx context.Context, resp []plandomain.Response) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, payload, s.cacheTTL).Err(); err != nil {
		s.log.Warn("plan catalog cache write failed", zap.Error(err))
	}
}

func toResponse(p plandomain.Plan, subscribers int64) plandomain.Response {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}
	status := p.Status
	if status == "" {
		status = plandomain.PlanStatusActive
	}

	return plandomain.Response{
		ID:              int64(p.ID),
		Name:            p.Name,
		Description:     description,
		Price:           p.Price,
		BillingCycle:    p.BillingCycle,
		Features:        plandomain.NormalizeFeatures(p.Features),
		MaxUsers:        p.MaxUsers,
		MaxStorageGB:    p.MaxStorageGB,
		Status:          status,
		TrialDays:       p.TrialDays,
		IsFeatured:      p.IsFeatured,
		CustomPricing:   p.CustomPricing,
		ProductType:     p.ProductType,
		SortOrder:       p.SortOrder,
		SubscriberCount: subscribers,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
