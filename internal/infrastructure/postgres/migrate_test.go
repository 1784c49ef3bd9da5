package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_Ordenadas(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])

	script, err := migrationsFS.ReadFile("migrations/" + names[0])
	require.NoError(t, err)
	for _, table := range []string{"users", "stores", "products", "carts", "orders", "business_settings",
		"subscription_plans", "ai_providers", "admin_messages", "backup_logs"} {
		assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS "+table+" ", table)
	}
}
