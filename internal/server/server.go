package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loanflowlabs/loanflow/internal/config"
	ledgerdomain "github.com/loanflowlabs/loanflow/internal/ledger/domain"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine *gin.Engine
	log    *zap.Logger

	subscriptionSvc subscriptiondomain.Service
	planSvc         plandomain.Service
	ledgerSvc       ledgerdomain.Service
	metrics         *Metrics
}

type ServerParam struct {
	fx.In

	Engine *gin.Engine
	Log    *zap.Logger

	SubscriptionSvc subscriptiondomain.Service
	PlanSvc         plandomain.Service
	LedgerSvc       ledgerdomain.Service
	Metrics         *Metrics
}

func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	return engine
}

func NewServer(p ServerParam) *Server {
	return &Server{
		engine:          p.Engine,
		log:             p.Log.Named("server"),
		subscriptionSvc: p.SubscriptionSvc,
		planSvc:         p.PlanSvc,
		ledgerSvc:       p.LedgerSvc,
		metrics:         p.Metrics,
	}
}

func (s *Server) RegisterRoutes() {
	s.engine.Use(s.metrics.HTTPMiddleware())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", s.metrics.Handler())

	api := s.engine.Group("/api")

	api.GET("/plans", s.ListPlans)
	api.GET("/plans/:id", s.GetPlan)

	api.POST("/tenants/:id/subscriptions", s.CreateTenantSubscription)
	api.GET("/tenants/:id/subscriptions", s.GetTenantSubscriptions)
	api.GET("/tenants/:id/products", s.ListProductSubscriptions)
	api.DELETE("/tenants/:id/products/:key", s.UnsubscribeProduct)
	api.GET("/tenants/:id/payments", s.ListTenantPayments)

	api.GET("/billing/subscriptions", s.ListBillingOverview)
	api.POST("/billing/subscriptions/:id/cancel", s.CancelSubscription)
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, s *Server) {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			s.log.Info("http server listening", zap.String("addr", cfg.Server.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewMetrics),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterRoutes()
	}),
	fx.Invoke(RunHTTP),
)
