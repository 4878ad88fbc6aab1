package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/loanflowlabs/loanflow/internal/clock"
	ledgerdomain "github.com/loanflowlabs/loanflow/internal/ledger/domain"
	ledgerservice "github.com/loanflowlabs/loanflow/internal/ledger/service"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	planrepo "github.com/loanflowlabs/loanflow/internal/plan/repository"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	subscriptionrepo "github.com/loanflowlabs/loanflow/internal/subscription/repository"
	tenantdomain "github.com/loanflowlabs/loanflow/internal/tenant/domain"
	tenantrepo "github.com/loanflowlabs/loanflow/internal/tenant/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	db    *gorm.DB
	clk   *clock.FixedClock
	node  *snowflake.Node
	svc   subscriptiondomain.Service
	ledgr ledgerdomain.Service
}

func newFixture(t *testing.T, migrate bool) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	// The tenant table always exists; billing tables are optional so tests
	// can exercise the not-yet-migrated degradation path.
	require.NoError(t, db.AutoMigrate(&tenantdomain.Tenant{}))
	if migrate {
		require.NoError(t, db.AutoMigrate(
			&plandomain.Plan{},
			&subscriptiondomain.TenantSubscription{},
			&subscriptiondomain.ProductSubscription{},
			&ledgerdomain.PaymentLedgerEntry{},
		))
	}

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clk := clock.NewFixed(testNow)
	log := zap.NewNop()

	ledgerSvc := ledgerservice.NewService(ledgerservice.ServiceParam{
		DB:      db,
		Log:     log,
		GenID:   node,
		CodeGen: ledgerservice.NewSeededCodeGenerator(42),
	})

	svc := NewService(ServiceParam{
		DB:         db,
		Log:        log,
		GenID:      node,
		Clock:      clk,
		Repo:       subscriptionrepo.Provide(),
		PlanRepo:   planrepo.Provide(),
		TenantRepo: tenantrepo.Provide(),
		LedgerSvc:  ledgerSvc,
	})

	return &fixture{db: db, clk: clk, node: node, svc: svc, ledgr: ledgerSvc}
}

func (f *fixture) seedTenant(t *testing.T, tenant tenantdomain.Tenant) tenantdomain.Tenant {
	t.Helper()
	if tenant.ID == 0 {
		tenant.ID = f.node.Generate()
	}
	if tenant.Plan == "" {
		tenant.Plan = tenantdomain.PlanLabelCustom
	}
	if tenant.Status == "" {
		tenant.Status = "active"
	}
	tenant.CreatedAt = testNow
	tenant.UpdatedAt = testNow
	require.NoError(t, f.db.Create(&tenant).Error)
	return tenant
}

func (f *fixture) seedPlan(t *testing.T, plan plandomain.Plan) plandomain.Plan {
	t.Helper()
	if plan.ID == 0 {
		plan.ID = f.node.Generate()
	}
	if plan.Status == "" {
		plan.Status = plandomain.PlanStatusActive
	}
	if plan.BillingCycle == "" {
		plan.BillingCycle = "monthly"
	}
	plan.CreatedAt = testNow
	plan.UpdatedAt = testNow
	require.NoError(t, f.db.Create(&plan).Error)
	return plan
}

func (f *fixture) tenantSub(t *testing.T, tenantID snowflake.ID) *subscriptiondomain.TenantSubscription {
	t.Helper()
	var subs []subscriptiondomain.TenantSubscription
	require.NoError(t, f.db.Where("tenant_id = ?", tenantID).Find(&subs).Error)
	if len(subs) == 0 {
		return nil
	}
	require.Len(t, subs, 1)
	return &subs[0]
}

func (f *fixture) ledgerRows(t *testing.T, tenantID snowflake.ID) []ledgerdomain.PaymentLedgerEntry {
	t.Helper()
	entries, err := f.ledgr.ListByTenant(context.Background(), tenantID)
	require.NoError(t, err)
	return entries
}

func strPtr(s string) *string { return &s }

func TestCreateOrUpdate_NewTenantWideSubscription(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	plan := f.seedPlan(t, plandomain.Plan{Name: "Starter Plan", Price: 999.995})

	receipt, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.NoError(t, err)

	require.Equal(t, "subscription", receipt.TransitionKind)
	require.Equal(t, "monthly", receipt.BillingCycle)
	require.Equal(t, 1000.00, receipt.Amount)
	require.Regexp(t, `^INV-20250315-[0-9A-Z]{6}$`, receipt.TransactionID)
	require.NotNil(t, receipt.NextBillingDate)
	require.WithinDuration(t, testNow.AddDate(0, 1, 0), *receipt.NextBillingDate, time.Second)
	require.Nil(t, receipt.ProductType)

	sub := f.tenantSub(t, tenant.ID)
	require.NotNil(t, sub)
	require.Equal(t, plan.ID, sub.PlanID)
	require.True(t, sub.Status.IsActive())
	require.Equal(t, 1000.00, sub.Price)
	require.Equal(t, 1000.00, sub.MonthlyPrice)

	var updated tenantdomain.Tenant
	require.NoError(t, f.db.First(&updated, "id = ?", tenant.ID).Error)
	require.Equal(t, tenantdomain.PlanLabelStarter, updated.Plan)

	rows := f.ledgerRows(t, tenant.ID)
	require.Len(t, rows, 1)
	require.Equal(t, ledgerdomain.TransitionSubscription, rows[0].TransactionType)
	require.Equal(t, "PHP", rows[0].Currency)
	require.Equal(t, "completed", rows[0].Status)
	require.Equal(t, "manual", rows[0].Provider)
	require.Equal(t, "platform", rows[0].ProductKey)
	require.Equal(t, "Subscribed to Starter Plan (monthly)", rows[0].Description)
}

func TestCreateOrUpdate_UpgradeKeepsSingleRowAppendsLedger(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	starter := f.seedPlan(t, plandomain.Plan{Name: "Starter Plan", Price: 1000})
	pro := f.seedPlan(t, plandomain.Plan{Name: "Pro Plan", Price: 24000, BillingCycle: "yearly"})

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(starter.ID),
	})
	require.NoError(t, err)

	receipt, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(pro.ID),
	})
	require.NoError(t, err)
	require.Equal(t, "upgrade", receipt.TransitionKind)
	require.Equal(t, "yearly", receipt.BillingCycle)

	sub := f.tenantSub(t, tenant.ID)
	require.NotNil(t, sub)
	require.Equal(t, pro.ID, sub.PlanID)
	require.Equal(t, 24000.00, sub.Price)
	require.Equal(t, 2000.00, sub.MonthlyPrice)
	require.NotNil(t, sub.NextBillingDate)
	require.WithinDuration(t, testNow.AddDate(1, 0, 0), *sub.NextBillingDate, time.Second)

	var updated tenantdomain.Tenant
	require.NoError(t, f.db.First(&updated, "id = ?", tenant.ID).Error)
	require.Equal(t, tenantdomain.PlanLabelProfessional, updated.Plan)

	// One ledger entry per transition, never overwritten.
	rows := f.ledgerRows(t, tenant.ID)
	require.Len(t, rows, 2)
	require.Equal(t, "Upgraded to Pro Plan (yearly)", rows[0].Description)
}

func TestCreateOrUpdate_MixedCaseStatusClassifiesUpgrade(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	plan := f.seedPlan(t, plandomain.Plan{Name: "Pro Plan", Price: 2500})

	require.NoError(t, f.db.Create(&subscriptiondomain.TenantSubscription{
		ID:           f.node.Generate(),
		TenantID:     tenant.ID,
		PlanID:       plan.ID,
		Status:       "Active",
		Price:        2500,
		MonthlyPrice: 2500,
		BillingCycle: "monthly",
		StartedAt:    testNow.AddDate(0, -1, 0),
		Metadata:     datatypes.JSONMap{},
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}).Error)

	receipt, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.NoError(t, err)
	require.Equal(t, "upgrade", receipt.TransitionKind)
}

func TestCreateOrUpdate_ProductAddOn(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending", Plan: tenantdomain.PlanLabelStarter})
	plan := f.seedPlan(t, plandomain.Plan{
		Name:        "Money Loan Add-on",
		Price:       500,
		ProductType: strPtr("money_loan"),
	})

	userID := int64(f.node.Generate())
	receipt, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID:      int64(tenant.ID),
		UserID:        &userID,
		PlanID:        int64(plan.ID),
		PaymentMethod: "gcash",
	})
	require.NoError(t, err)

	require.NotNil(t, receipt.ProductType)
	require.Equal(t, "money_loan", *receipt.ProductType)
	// Add-ons do not carry a billing date; the bundle does the scheduling.
	require.Nil(t, receipt.NextBillingDate)

	var products []subscriptiondomain.ProductSubscription
	require.NoError(t, f.db.Where("tenant_id = ?", tenant.ID).Find(&products).Error)
	require.Len(t, products, 1)
	require.Equal(t, "money_loan", products[0].ProductKey)
	require.True(t, products[0].Status.IsActive())

	// No tenant-wide row is created and the tenant's plan label is untouched.
	require.Nil(t, f.tenantSub(t, tenant.ID))
	var updated tenantdomain.Tenant
	require.NoError(t, f.db.First(&updated, "id = ?", tenant.ID).Error)
	require.Equal(t, tenantdomain.PlanLabelStarter, updated.Plan)

	rows := f.ledgerRows(t, tenant.ID)
	require.Len(t, rows, 1)
	require.Equal(t, "money_loan", rows[0].ProductKey)
	require.Equal(t, "gcash", rows[0].Provider)
	require.NotNil(t, rows[0].UserID)
	require.Equal(t, snowflake.ID(userID), *rows[0].UserID)
}

func TestCreateOrUpdate_RepeatProductPurchaseIsIdempotentOnRowCount(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	plan := f.seedPlan(t, plandomain.Plan{
		Name:        "BNPL Add-on",
		Price:       750,
		ProductType: strPtr("bnpl"),
	})

	for i := 0; i < 3; i++ {
		_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
			TenantID: int64(tenant.ID),
			PlanID:   int64(plan.ID),
		})
		require.NoError(t, err)
	}

	var products []subscriptiondomain.ProductSubscription
	require.NoError(t, f.db.Where("tenant_id = ?", tenant.ID).Find(&products).Error)
	require.Len(t, products, 1)

	// Three transitions, three ledger rows.
	require.Len(t, f.ledgerRows(t, tenant.ID), 3)
}

func TestCreateOrUpdate_TenantWidePurchaseReactivatesEnabledProducts(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{
		Name:             "Acme Lending",
		MoneyLoanEnabled: true,
		BNPLEnabled:      true,
	})
	bundle := f.seedPlan(t, plandomain.Plan{Name: "Enterprise Plan", Price: 5000})

	expired := testNow.AddDate(0, -1, 0)
	require.NoError(t, f.db.Create(&subscriptiondomain.ProductSubscription{
		ID:           f.node.Generate(),
		TenantID:     tenant.ID,
		ProductKey:   "money_loan",
		PlanID:       f.node.Generate(),
		Status:       subscriptiondomain.SubscriptionStatusExpired,
		Price:        500,
		BillingCycle: "monthly",
		StartedAt:    expired,
		ExpiresAt:    &expired,
		Metadata:     datatypes.JSONMap{},
		CreatedAt:    expired,
		UpdatedAt:    expired,
	}).Error)

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(bundle.ID),
	})
	require.NoError(t, err)

	// The existing money_loan row is reactivated in place. bnpl is enabled on
	// the tenant but has no row, and the cascade must not invent one.
	var products []subscriptiondomain.ProductSubscription
	require.NoError(t, f.db.Where("tenant_id = ?", tenant.ID).Find(&products).Error)
	require.Len(t, products, 1)
	require.Equal(t, "money_loan", products[0].ProductKey)
	require.True(t, products[0].Status.IsActive())
	require.Nil(t, products[0].ExpiresAt)

	var updated tenantdomain.Tenant
	require.NoError(t, f.db.First(&updated, "id = ?", tenant.ID).Error)
	require.Equal(t, tenantdomain.PlanLabelEnterprise, updated.Plan)
}

func TestCreateOrUpdate_InactivePlanRejectedWithoutWrites(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	plan := f.seedPlan(t, plandomain.Plan{
		Name:   "Retired Plan",
		Price:  1000,
		Status: plandomain.PlanStatusInactive,
	})

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.ErrorIs(t, err, plandomain.ErrPlanNotFound)

	require.Nil(t, f.tenantSub(t, tenant.ID))
	require.Empty(t, f.ledgerRows(t, tenant.ID))
}

func TestCreateOrUpdate_InvalidInputs(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{TenantID: 1, PlanID: 0})
	require.ErrorIs(t, err, subscriptiondomain.ErrInvalidPlanID)

	plan := f.seedPlan(t, plandomain.Plan{Name: "Starter Plan", Price: 1000})
	_, err = f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: 999999,
		PlanID:   int64(plan.ID),
	})
	require.ErrorIs(t, err, tenantdomain.ErrTenantNotFound)
}

func TestGetCurrentTenantSubscriptions_JoinsPlan(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{
		Name:             "Acme Lending",
		MoneyLoanEnabled: true,
		PawnshopEnabled:  true,
	})
	plan := f.seedPlan(t, plandomain.Plan{
		Name:       "Pro Plan",
		Price:      2500,
		Features:   datatypes.JSON([]byte(`["reports","api_access"]`)),
		IsFeatured: true,
	})

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.NoError(t, err)

	resp, err := f.svc.GetCurrentTenantSubscriptions(ctx, int64(tenant.ID))
	require.NoError(t, err)
	require.Equal(t, []string{"money_loan", "pawnshop"}, resp.EnabledProducts)
	require.Len(t, resp.Subscriptions, 1)

	view := resp.Subscriptions[0]
	require.Equal(t, int64(plan.ID), view.ID)
	require.Equal(t, "Pro Plan", view.Name)
	require.Equal(t, []string{"reports", "api_access"}, view.Features)
	require.True(t, view.IsActive)
	require.True(t, view.IsRecommended)
	require.Equal(t, "active", view.SubscriptionStatus)
}

func TestGetCurrentTenantSubscriptions_MissingTablesDegradesToEmpty(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{
		Name:        "Fresh Tenant",
		BNPLEnabled: true,
	})

	resp, err := f.svc.GetCurrentTenantSubscriptions(ctx, int64(tenant.ID))
	require.NoError(t, err)
	require.Empty(t, resp.Subscriptions)
	require.Equal(t, []string{"bnpl"}, resp.EnabledProducts)
}

func TestGetCurrentTenantSubscriptions_UnknownTenant(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.GetCurrentTenantSubscriptions(context.Background(), 424242)
	require.ErrorIs(t, err, tenantdomain.ErrTenantNotFound)
}

func TestListOverview_MissingTablesDegradesToEmpty(t *testing.T) {
	f := newFixture(t, false)

	rows, err := f.svc.ListOverview(context.Background(), subscriptiondomain.OverviewFilter{})
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestListOverview_FiltersByTenant(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenantA := f.seedTenant(t, tenantdomain.Tenant{Name: "Tenant A"})
	tenantB := f.seedTenant(t, tenantdomain.Tenant{Name: "Tenant B"})
	plan := f.seedPlan(t, plandomain.Plan{Name: "Starter Plan", Price: 1000})

	for _, tn := range []tenantdomain.Tenant{tenantA, tenantB} {
		_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
			TenantID: int64(tn.ID),
			PlanID:   int64(plan.ID),
		})
		require.NoError(t, err)
	}

	all, err := f.svc.ListOverview(ctx, subscriptiondomain.OverviewFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	tenantID := int64(tenantA.ID)
	filtered, err := f.svc.ListOverview(ctx, subscriptiondomain.OverviewFilter{TenantID: &tenantID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.NotNil(t, filtered[0].TenantName)
	require.Equal(t, "Tenant A", *filtered[0].TenantName)
	require.NotNil(t, filtered[0].PlanName)
	require.Equal(t, "Starter Plan", *filtered[0].PlanName)
}

func TestCancel_SetsReasonOnceAndIsIdempotent(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	plan := f.seedPlan(t, plandomain.Plan{Name: "Starter Plan", Price: 1000})

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.NoError(t, err)

	sub := f.tenantSub(t, tenant.ID)
	require.NotNil(t, sub)

	row, err := f.svc.Cancel(ctx, int64(sub.ID), "switching providers")
	require.NoError(t, err)
	require.Equal(t, string(subscriptiondomain.SubscriptionStatusCancelled), row.Status)
	require.NotNil(t, row.CancelledAt)
	require.NotNil(t, row.CancellationReason)
	require.Equal(t, "switching providers", *row.CancellationReason)

	// Cancelling again keeps the original reason.
	again, err := f.svc.Cancel(ctx, int64(sub.ID), "different reason")
	require.NoError(t, err)
	require.Equal(t, "switching providers", *again.CancellationReason)

	_, err = f.svc.Cancel(ctx, 987654, "")
	require.ErrorIs(t, err, subscriptiondomain.ErrSubscriptionNotFound)
}

func TestCancel_ThenResubscribeClearsCancellation(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	plan := f.seedPlan(t, plandomain.Plan{Name: "Starter Plan", Price: 1000})

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.NoError(t, err)

	sub := f.tenantSub(t, tenant.ID)
	_, err = f.svc.Cancel(ctx, int64(sub.ID), "pause")
	require.NoError(t, err)

	// A new purchase after cancellation is a fresh subscription, not an
	// upgrade, and wipes the cancellation fields.
	receipt, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.NoError(t, err)
	require.Equal(t, "subscription", receipt.TransitionKind)

	sub = f.tenantSub(t, tenant.ID)
	require.True(t, sub.Status.IsActive())
	require.Nil(t, sub.CancelledAt)
	require.Nil(t, sub.CancellationReason)
}

func TestProductSubscriptionViewsAndUnsubscribe(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenant := f.seedTenant(t, tenantdomain.Tenant{Name: "Acme Lending"})
	plan := f.seedPlan(t, plandomain.Plan{
		Name:        "Pawnshop Add-on",
		Price:       300,
		ProductType: strPtr("pawnshop"),
		Features:    datatypes.JSON([]byte(`["appraisals"]`)),
	})

	_, err := f.svc.CreateOrUpdate(ctx, subscriptiondomain.CreateOrUpdateRequest{
		TenantID: int64(tenant.ID),
		PlanID:   int64(plan.ID),
	})
	require.NoError(t, err)

	views, err := f.svc.ListProductSubscriptions(ctx, int64(tenant.ID))
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "pawnshop", views[0].ProductKey)
	require.NotNil(t, views[0].Plan)
	require.Equal(t, "Pawnshop Add-on", views[0].Plan.Name)
	require.Equal(t, []string{"appraisals"}, views[0].Plan.Features)

	err = f.svc.UnsubscribeProduct(ctx, int64(tenant.ID), "pawnshop")
	require.NoError(t, err)

	views, err = f.svc.ListProductSubscriptions(ctx, int64(tenant.ID))
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, string(subscriptiondomain.SubscriptionStatusCancelled), views[0].Status)
	require.NotNil(t, views[0].ExpiresAt)

	require.ErrorIs(t, f.svc.UnsubscribeProduct(ctx, int64(tenant.ID), ""), subscriptiondomain.ErrInvalidProductKey)
	require.ErrorIs(t, f.svc.UnsubscribeProduct(ctx, int64(tenant.ID), "bnpl"), subscriptiondomain.ErrSubscriptionNotFound)
}
