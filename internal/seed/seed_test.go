package seed

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/loanflowlabs/loanflow/internal/clock"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnsurePlanCatalog_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&plandomain.Plan{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	seededAt := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(seededAt)

	require.NoError(t, EnsurePlanCatalog(db, node, clk))

	var count int64
	require.NoError(t, db.Model(&plandomain.Plan{}).Count(&count).Error)
	require.Equal(t, int64(6), count)

	var starter plandomain.Plan
	require.NoError(t, db.Where("name = ?", "Starter Plan").Take(&starter).Error)
	require.WithinDuration(t, seededAt, starter.CreatedAt, time.Second)

	// Second run must not duplicate anything.
	require.NoError(t, EnsurePlanCatalog(db, node, clk))
	require.NoError(t, db.Model(&plandomain.Plan{}).Count(&count).Error)
	require.Equal(t, int64(6), count)

	var addOns []plandomain.Plan
	require.NoError(t, db.Where("product_type IS NOT NULL").Find(&addOns).Error)
	require.Len(t, addOns, 3)
	for _, p := range addOns {
		require.True(t, p.IsProductScoped())
	}
}
