package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/loanflowlabs/loanflow/internal/clock"
	ledgerdomain "github.com/loanflowlabs/loanflow/internal/ledger/domain"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	tenantdomain "github.com/loanflowlabs/loanflow/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock

	repo       subscriptiondomain.Repository
	planRepo   plandomain.Repository
	tenantRepo tenantdomain.Repository
	ledgerSvc  ledgerdomain.Service
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock

	Repo       subscriptiondomain.Repository
	PlanRepo   plandomain.Repository
	TenantRepo tenantdomain.Repository
	LedgerSvc  ledgerdomain.Service
}

func NewService(p ServiceParam) subscriptiondomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("subscription.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		planRepo:   p.PlanRepo,
		tenantRepo: p.TenantRepo,
		ledgerSvc:  p.LedgerSvc,
	}
}

// CreateOrUpdate implements domain.Service.
//
// The whole transition runs in one database transaction: plan lookup, the
// locked existence check that classifies new-vs-upgrade, the scoped upsert,
// the tenant label update plus cascade, and the ledger append. Any failure
// rolls everything back; no transition is ever partially applied.
func (s *Service) CreateOrUpdate(ctx context.Context, req subscriptiondomain.CreateOrUpdateRequest) (subscriptiondomain.TransitionReceipt, error) {
	if req.PlanID <= 0 {
		return subscriptiondomain.TransitionReceipt{}, subscriptiondomain.ErrInvalidPlanID
	}

	var receipt subscriptiondomain.TransitionReceipt

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tenant, err := s.tenantRepo.FindByID(ctx, tx, snowflake.ID(req.TenantID))
		if err != nil {
			return err
		}
		if tenant == nil {
			return tenantdomain.ErrTenantNotFound
		}

		plan, err := s.planRepo.FindActiveByID(ctx, tx, snowflake.ID(req.PlanID))
		if err != nil {
			return err
		}
		if plan == nil {
			return plandomain.ErrPlanNotFound
		}

		wp, err := s.resolveTransition(ctx, tx, *tenant, *plan, req)
		if err != nil {
			return err
		}

		if err := s.applyWritePlan(ctx, tx, wp); err != nil {
			return err
		}

		entry, err := s.ledgerSvc.Append(ctx, tx, ledgerdomain.AppendRequest{
			TenantID:   wp.tenant.ID,
			UserID:     wp.userID,
			PlanID:     wp.plan.ID,
			PlanName:   wp.plan.Name,
			Amount:     wp.price,
			Provider:   wp.provider,
			Kind:       wp.kind,
			ProductKey: wp.scope.LedgerProductKey(),
			Cycle:      string(wp.cycle),
			Now:        wp.now,
		})
		if err != nil {
			return err
		}

		var productType *string
		if key, ok := wp.scope.Product(); ok {
			productType = &key
		}

		receipt = subscriptiondomain.TransitionReceipt{
			PlanID:          int64(wp.plan.ID),
			PlanName:        wp.plan.Name,
			ProductType:     productType,
			TransitionKind:  string(wp.kind),
			BillingCycle:    string(wp.cycle),
			Amount:          wp.price,
			TransactionID:   entry.TransactionID,
			NextBillingDate: wp.nextBillingDate,
		}
		return nil
	})
	if err != nil {
		return subscriptiondomain.TransitionReceipt{}, err
	}

	s.log.Info("subscription transition committed",
		zap.Int64("tenant_id", req.TenantID),
		zap.Int64("plan_id", receipt.PlanID),
		zap.String("transition_kind", receipt.TransitionKind),
		zap.String("transaction_id", receipt.TransactionID),
	)
	return receipt, nil
}

func (s *Service) Cancel(ctx context.Context, subscriptionID int64, reason string) (subscriptiondomain.OverviewRow, error) {
	sub, err := s.repo.FindByID(ctx, s.db, snowflake.ID(subscriptionID))
	if err != nil {
		return subscriptiondomain.OverviewRow{}, err
	}
	if sub == nil {
		return subscriptiondomain.OverviewRow{}, subscriptiondomain.ErrSubscriptionNotFound
	}

	// Cancelling twice is a no-op; the first cancellation's timestamp and
	// reason are preserved.
	if sub.Status != subscriptiondomain.SubscriptionStatusCancelled {
		var reasonPtr *string
		if reason != "" {
			reasonPtr = &reason
		}
		now := s.clock.Now(ctx)
		if err := s.repo.CancelByID(ctx, s.db, sub.ID, reasonPtr, now); err != nil {
			return subscriptiondomain.OverviewRow{}, err
		}
	}

	row, err := s.findOverviewRow(ctx, sub.ID)
	if err != nil {
		return subscriptiondomain.OverviewRow{}, err
	}
	if row == nil {
		return subscriptiondomain.OverviewRow{}, subscriptiondomain.ErrSubscriptionNotFound
	}
	return *row, nil
}

func (s *Service) UnsubscribeProduct(ctx context.Context, tenantID int64, productKey string) error {
	if productKey == "" {
		return subscriptiondomain.ErrInvalidProductKey
	}

	sub, err := s.repo.FindProduct(ctx, s.db, snowflake.ID(tenantID), productKey)
	if err != nil {
		return err
	}
	if sub == nil {
		return subscriptiondomain.ErrSubscriptionNotFound
	}

	return s.repo.CancelProduct(ctx, s.db, sub.ID, s.clock.Now(ctx))
}
