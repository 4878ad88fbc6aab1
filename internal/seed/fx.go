package seed

import (
	"github.com/bwmarrin/snowflake"
	"github.com/loanflowlabs/loanflow/internal/clock"
	"github.com/loanflowlabs/loanflow/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("seed",
	fx.Invoke(func(cfg config.Config, db *gorm.DB, node *snowflake.Node, clk clock.Clock, log *zap.Logger) error {
		if !cfg.Database.SeedPlanCatalog {
			return nil
		}
		if err := EnsurePlanCatalog(db, node, clk); err != nil {
			return err
		}
		log.Info("plan catalog seeded")
		return nil
	}),
)
