package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/loanflowlabs/loanflow/internal/tenant/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, *snowflake.Node) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Tenant{}))
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return db, node
}

func newTenant(node *snowflake.Node, name string, subdomain *string) domain.Tenant {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	return domain.Tenant{
		ID:        node.Generate(),
		Name:      name,
		Subdomain: subdomain,
		Plan:      domain.PlanLabelCustom,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateWithoutSubdomainDoesNotCollide(t *testing.T) {
	db, node := newTestDB(t)

	first := newTenant(node, "Tenant A", nil)
	second := newTenant(node, "Tenant B", nil)
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	sub := "acme"
	third := newTenant(node, "Tenant C", &sub)
	require.NoError(t, db.Create(&third).Error)

	dup := newTenant(node, "Tenant D", &sub)
	require.Error(t, db.Create(&dup).Error)
}

func TestFindByID(t *testing.T) {
	db, node := newTestDB(t)
	repo := Provide()

	sub := "acme"
	seeded := newTenant(node, "Acme Lending", &sub)
	require.NoError(t, db.Create(&seeded).Error)

	found, err := repo.FindByID(context.Background(), db, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "Acme Lending", found.Name)
	require.NotNil(t, found.Subdomain)
	require.Equal(t, "acme", *found.Subdomain)

	missing, err := repo.FindByID(context.Background(), db, node.Generate())
	require.NoError(t, err)
	require.Nil(t, missing)
}
