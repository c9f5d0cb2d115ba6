package repository_test

import (
	"context"
	"database/sql"
	"envelope-orchestrator/config"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/repository"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{
	"id", "user_id", "email", "name", "is_default",
	"account_id", "account_name", "access_token", "refresh_token",
	"expires_at", "created_at", "updated_at",
}

func newRepoWithMock(t *testing.T) (*repository.AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	database := &config.Database{DB: sqlx.NewDb(db, "sqlmock")}
	return repository.NewAccountRepository(database), mock
}

func accountRow(rows *sqlmock.Rows, accountID string, isDefault bool, at time.Time) *sqlmock.Rows {
	return rows.AddRow(1, "user-1", "owner@example.com", "Owner", isDefault,
		accountID, "Demo", "access", "refresh", at, at, at)
}

func TestAccountRepository_ListByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(accountColumns)
	accountRow(rows, "acc-default", true, now)
	accountRow(rows, "acc-2", false, now)

	mock.ExpectQuery(`(?s)SELECT .* FROM user_esign_accounts AS u\s+JOIN esign_accounts AS a .* WHERE u.user_id = \$1\s+ORDER BY u.is_default DESC, u.created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(rows)

	accounts, err := repo.ListByUser(context.Background(), repo.Executor(), "user-1")

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "acc-default", accounts[0].AccountID)
	assert.True(t, accounts[0].IsDefault)
	assert.Equal(t, "refresh", accounts[0].RefreshToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ListByUser_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT .* FROM user_esign_accounts`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	accounts, err := repo.ListByUser(context.Background(), repo.Executor(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestAccountRepository_GetByAccountID(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		expectErr error
		anyErr    bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(accountColumns)
				accountRow(rows, "acc-1", false, time.Now())
				mock.ExpectQuery(`(?s)WHERE u.user_id = \$1 AND a.account_id = \$2`).
					WithArgs("user-1", "acc-1").
					WillReturnRows(rows)
			},
		},
		{
			name: "not linked to user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)WHERE u.user_id = \$1 AND a.account_id = \$2`).
					WithArgs("user-1", "acc-1").
					WillReturnError(sql.ErrNoRows)
			},
			expectErr: model.ErrAccountNotFound,
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)WHERE u.user_id = \$1 AND a.account_id = \$2`).
					WithArgs("user-1", "acc-1").
					WillReturnError(errors.New("db down"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			tt.setup(mock)

			account, err := repo.GetByAccountID(context.Background(), repo.Executor(), "user-1", "acc-1")

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, account)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, model.ErrAccountNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, "acc-1", account.AccountID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_GetDefault_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)WHERE u.user_id = \$1 AND u.is_default = TRUE\s+LIMIT 1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	account, err := repo.GetDefault(context.Background(), repo.Executor(), "user-1")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestAccountRepository_SetDefault(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "linked account", affected: 1, expected: true},
		{name: "unknown account", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE user_esign_accounts SET is_default = FALSE WHERE user_id = \$1`).
				WithArgs("user-1").
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectExec(`(?s)UPDATE user_esign_accounts SET is_default = TRUE .* account_id = \$2`).
				WithArgs("user-1", "acc-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			exec, rollback, commit, err := repo.BeginTX(context.Background())
			require.NoError(t, err)
			defer rollback()

			updated, err := repo.SetDefault(context.Background(), exec, "user-1", "acc-1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, updated)

			require.NoError(t, commit())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)DELETE FROM user_esign_accounts\s+WHERE user_id = \$1`).
		WithArgs("user-1", "acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), repo.Executor(), "user-1", "acc-1")

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateTokens(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expiresAt := time.Date(2025, 8, 23, 20, 0, 0, 0, time.UTC)

	mock.ExpectExec(`(?s)UPDATE esign_accounts\s+SET access_token = \$2, refresh_token = \$3, expires_at = \$4, updated_at = NOW\(\)\s+WHERE account_id = \$1`).
		WithArgs("acc-1", "new-access", "new-refresh", expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTokens(context.Background(), repo.Executor(), "acc-1", "new-access", "new-refresh", expiresAt)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
