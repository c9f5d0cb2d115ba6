package repository

import (
	"context"
	"database/sql"
	"envelope-orchestrator/config"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/util"
	"errors"
	"fmt"
	"github.com/jmoiron/sqlx"
	"time"
)

const accountColumns = `
	u.id, u.user_id, u.email, u.name, u.is_default,
	a.account_id, a.account_name, a.access_token, a.refresh_token,
	a.expires_at, a.created_at, a.updated_at
`

type AccountRepository struct {
	*config.Database
}

func NewAccountRepository(database *config.Database) *AccountRepository {
	return &AccountRepository{database}
}

// ListByUser : аккаунты пользователя, аккаунт по умолчанию первым
func (r *AccountRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID string) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM user_esign_accounts AS u
		JOIN esign_accounts AS a ON a.id = u.esign_account_id
		WHERE u.user_id = $1
		ORDER BY u.is_default DESC, u.created_at DESC
	`

	accounts := make([]model.Account, 0)
	if err := sqlx.SelectContext(ctx, exec, &accounts, query, userID); err != nil {
		return nil, util.LogError("[AccountRepo] не удалось получить аккаунты пользователя", err)
	}
	return accounts, nil
}

// GetByAccountID : аккаунт провайдера, если он привязан к пользователю
func (r *AccountRepository) GetByAccountID(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM user_esign_accounts AS u
		JOIN esign_accounts AS a ON a.id = u.esign_account_id
		WHERE u.user_id = $1 AND a.account_id = $2
	`

	var account model.Account
	err := sqlx.GetContext(ctx, exec, &account, query, userID, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", model.ErrAccountNotFound, accountID)
	}
	if err != nil {
		return nil, util.LogError("[AccountRepo] не удалось найти аккаунт", err)
	}
	return &account, nil
}

func (r *AccountRepository) GetDefault(ctx context.Context, exec sqlx.ExtContext, userID string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM user_esign_accounts AS u
		JOIN esign_accounts AS a ON a.id = u.esign_account_id
		WHERE u.user_id = $1 AND u.is_default = TRUE
		LIMIT 1
	`

	var account model.Account
	err := sqlx.GetContext(ctx, exec, &account, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: у пользователя %s нет аккаунта по умолчанию", model.ErrAccountNotFound, userID)
	}
	if err != nil {
		return nil, util.LogError("[AccountRepo] не удалось получить аккаунт по умолчанию", err)
	}
	return &account, nil
}

// SetDefault : снимает флаг со всех аккаунтов пользователя и ставит на указанный.
// Вызывать внутри транзакции
func (r *AccountRepository) SetDefault(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (bool, error) {
	_, err := exec.ExecContext(ctx, `UPDATE user_esign_accounts SET is_default = FALSE WHERE user_id = $1`, userID)
	if err != nil {
		return false, util.LogError("[AccountRepo] не удалось сбросить аккаунт по умолчанию", err)
	}

	result, err := exec.ExecContext(ctx, `
		UPDATE user_esign_accounts SET is_default = TRUE
		WHERE user_id = $1
		  AND esign_account_id = (SELECT id FROM esign_accounts WHERE account_id = $2)
	`, userID, accountID)
	if err != nil {
		return false, util.LogError("[AccountRepo] не удалось установить аккаунт по умолчанию", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[AccountRepo] не удалось получить число изменённых строк", err)
	}
	return affected > 0, nil
}

// Delete : отвязывает аккаунт от пользователя
func (r *AccountRepository) Delete(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (bool, error) {
	result, err := exec.ExecContext(ctx, `
		DELETE FROM user_esign_accounts
		WHERE user_id = $1
		  AND esign_account_id = (SELECT id FROM esign_accounts WHERE account_id = $2)
	`, userID, accountID)
	if err != nil {
		return false, util.LogError("[AccountRepo] не удалось удалить аккаунт", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[AccountRepo] не удалось получить число изменённых строк", err)
	}
	return affected > 0, nil
}

// UpdateTokens : токены общие для всех пользователей аккаунта
func (r *AccountRepository) UpdateTokens(ctx context.Context, exec sqlx.ExtContext, accountID, accessToken, refreshToken string, expiresAt time.Time) error {
	query := `
		UPDATE esign_accounts
		SET access_token = $2, refresh_token = $3, expires_at = $4, updated_at = NOW()
		WHERE account_id = $1
	`
	_, err := exec.ExecContext(ctx, query, accountID, accessToken, refreshToken, expiresAt)
	if err != nil {
		return util.LogError("[AccountRepo] не удалось обновить токены", err)
	}
	return nil
}

func (r *AccountRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}

// Executor : исполнитель запросов вне транзакции
func (r *AccountRepository) Executor() sqlx.ExtContext {
	return r.DB
}
