package config

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	tests := []struct {
		name      string
		upErr     error
		expectErr bool
	}{
		{name: "applied"},
		{name: "goose failure", upErr: errors.New("relation already exists"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			database := &Database{DB: sqlx.NewDb(db, "sqlmock")}

			original := gooseUp
			t.Cleanup(func() { gooseUp = original })

			var gotDB *sql.DB
			var gotDir string
			gooseUp = func(ctx context.Context, conn *sql.DB, dir string) error {
				gotDB = conn
				gotDir = dir
				return tt.upErr
			}

			err = RunMigrations(context.Background(), database)

			assert.Same(t, db, gotDB)
			assert.Equal(t, ".", gotDir)
			if tt.expectErr {
				assert.ErrorIs(t, err, tt.upErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
