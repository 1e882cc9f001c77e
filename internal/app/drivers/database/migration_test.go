package database

import (
	"testing"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_AreOrderedAndReversible(t *testing.T) {
	found, err := Migrations().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, found)

	seen := map[string]bool{}
	for i, migration := range found {
		assert.False(t, seen[migration.Id], "duplicate id %s", migration.Id)
		seen[migration.Id] = true
		assert.NotEmpty(t, migration.Up, migration.Id)
		assert.NotEmpty(t, migration.Down, migration.Id)
		if i > 0 {
			assert.True(t, found[i-1].Less(migration), "%s must sort before %s", found[i-1].Id, migration.Id)
		}
	}
}

func TestDirectionName(t *testing.T) {
	assert.Equal(t, "up", directionName(migrate.Up))
	assert.Equal(t, "down", directionName(migrate.Down))
}
