package migrations_test

import (
	"envelope-orchestrator/migrations"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedWithGooseAnnotations(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		content, err := fs.ReadFile(migrations.Migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", name)
		assert.Contains(t, string(content), "-- +goose Down", name)
	}

	schema, err := fs.ReadFile(migrations.Migrations, "0001_esign_accounts.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schema), "CREATE TABLE IF NOT EXISTS esign_accounts")
	assert.Contains(t, string(schema), "CREATE TABLE IF NOT EXISTS user_esign_accounts")
}
