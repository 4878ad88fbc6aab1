package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/loanflowlabs/loanflow/internal/clock"
	"github.com/loanflowlabs/loanflow/internal/config"
	"github.com/loanflowlabs/loanflow/internal/ledger"
	"github.com/loanflowlabs/loanflow/internal/migration"
	"github.com/loanflowlabs/loanflow/internal/observability"
	"github.com/loanflowlabs/loanflow/internal/plan"
	"github.com/loanflowlabs/loanflow/internal/redis"
	"github.com/loanflowlabs/loanflow/internal/seed"
	"github.com/loanflowlabs/loanflow/internal/server"
	"github.com/loanflowlabs/loanflow/internal/subscription"
	"github.com/loanflowlabs/loanflow/internal/tenant"
	"github.com/loanflowlabs/loanflow/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "loanflow",
		Short:   "LoanFlow billing CLI",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newServeCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the billing API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		seed.Module,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		fx.Invoke(migrateOnStart),
		clock.Module,
		redis.Module,
		tenant.Module,
		plan.Module,
		ledger.Module,
		subscription.Module,
		server.Module,
	)
	app.Run()
}

// migrateOnStart applies pending migrations before serving when the
// deployment opts in. Dedicated environments use the migrate subcommand.
func migrateOnStart(cfg config.Config, conn *gorm.DB) error {
	if !cfg.Database.MigrateOnStart {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return migration.RunMigrations(sqlDB)
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
