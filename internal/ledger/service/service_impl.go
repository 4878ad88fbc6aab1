package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/loanflowlabs/loanflow/internal/ledger/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID   *snowflake.Node
	codeGen CodeGenerator
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	CodeGen CodeGenerator
}

func NewService(p ServiceParam) ledgerdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("ledger.service"),
		genID:   p.GenID,
		codeGen: p.CodeGen,
	}
}

func (s *Service) Append(ctx context.Context, tx *gorm.DB, req ledgerdomain.AppendRequest) (ledgerdomain.PaymentLedgerEntry, error) {
	provider := req.Provider
	if provider == "" {
		provider = ledgerdomain.ProviderManual
	}
	productKey := req.ProductKey
	if productKey == "" {
		productKey = ledgerdomain.ScopePlatform
	}

	entry := ledgerdomain.PaymentLedgerEntry{
		ID:              s.genID.Generate(),
		TenantID:        req.TenantID,
		TransactionID:   s.codeGen.Next(req.Now),
		Amount:          req.Amount,
		Currency:        ledgerdomain.Currency,
		Status:          ledgerdomain.StatusCompleted,
		Provider:        provider,
		ProcessedAt:     req.Now,
		UserID:          req.UserID,
		PlanID:          req.PlanID,
		TransactionType: req.Kind,
		PlanName:        req.PlanName,
		ProductKey:      productKey,
		Description:     describeTransition(req.Kind, req.PlanName, req.Cycle),
		CreatedAt:       req.Now,
	}

	if err := tx.WithContext(ctx).Exec(
		`INSERT INTO payment_ledger (
			id, tenant_id, transaction_id, amount, currency, status, provider,
			processed_at, user_id, plan_id, transaction_type, plan_name,
			product_key, description, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.TenantID,
		entry.TransactionID,
		entry.Amount,
		entry.Currency,
		entry.Status,
		entry.Provider,
		entry.ProcessedAt,
		entry.UserID,
		entry.PlanID,
		entry.TransactionType,
		entry.PlanName,
		entry.ProductKey,
		entry.Description,
		entry.CreatedAt,
	).Error; err != nil {
		return ledgerdomain.PaymentLedgerEntry{}, err
	}

	return entry, nil
}

func (s *Service) ListByTenant(ctx context.Context, tenantID snowflake.ID) ([]ledgerdomain.PaymentLedgerEntry, error) {
	var entries []ledgerdomain.PaymentLedgerEntry
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, tenant_id, transaction_id, amount, currency, status, provider,
		 processed_at, user_id, plan_id, transaction_type, plan_name, product_key,
		 description, created_at
		 FROM payment_ledger WHERE tenant_id = ? ORDER BY processed_at DESC, id DESC`,
		tenantID,
	).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []ledgerdomain.PaymentLedgerEntry{}
	}
	return entries, nil
}

func describeTransition(kind ledgerdomain.TransitionKind, planName, cycle string) string {
	verb := "Subscribed to"
	if kind == ledgerdomain.TransitionUpgrade {
		verb = "Upgraded to"
	}
	return verb + " " + planName + " (" + cycle + ")"
}
