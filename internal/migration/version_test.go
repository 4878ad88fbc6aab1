package migration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatestMigrationVersion(t *testing.T) {
	version, err := LatestMigrationVersion()
	require.NoError(t, err)
	require.Equal(t, uint(5), version)
}

func TestParseMigrationVersion(t *testing.T) {
	v, ok := parseMigrationVersion("3_create_tenant_subscriptions.up.sql")
	require.True(t, ok)
	require.Equal(t, uint(3), v)

	_, ok = parseMigrationVersion("notaversion.up.sql")
	require.False(t, ok)

	_, ok = parseMigrationVersion("_missing.up.sql")
	require.False(t, ok)
}
