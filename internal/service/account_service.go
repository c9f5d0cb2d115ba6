package service

import (
	"context"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/ports"
	"envelope-orchestrator/internal/util"
	"fmt"
)

type AccountService struct {
	accounts ports.AccountRepository
}

func NewAccountService(accounts ports.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// ListAccounts : аккаунты пользователя, аккаунт по умолчанию первым
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]model.Account, error) {
	accounts, err := s.accounts.ListByUser(ctx, s.accounts.Executor(), userID)
	if err != nil {
		return nil, util.LogError("[AccountService] не удалось получить аккаунты", err)
	}
	return accounts, nil
}

func (s *AccountService) GetAccount(ctx context.Context, userID, accountID string) (*model.Account, error) {
	return s.accounts.GetByAccountID(ctx, s.accounts.Executor(), userID, accountID)
}

// SetDefault : у пользователя всегда не больше одного аккаунта по умолчанию
func (s *AccountService) SetDefault(ctx context.Context, userID, accountID string) error {
	exec, rollback, commit, err := s.accounts.BeginTX(ctx)
	if err != nil {
		return util.LogError("[AccountService] не удалось начать транзакцию", err)
	}
	defer rollback()

	updated, err := s.accounts.SetDefault(ctx, exec, userID, accountID)
	if err != nil {
		return err
	}
	if updated == false {
		return fmt.Errorf("%w: %s", model.ErrAccountNotFound, accountID)
	}

	if err := commit(); err != nil {
		return util.LogError("[AccountService] не удалось закоммитить транзакцию", err)
	}
	return nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	deleted, err := s.accounts.Delete(ctx, s.accounts.Executor(), userID, accountID)
	if err != nil {
		return util.LogError("[AccountService] не удалось удалить аккаунт", err)
	}
	if deleted == false {
		return fmt.Errorf("%w: %s", model.ErrAccountNotFound, accountID)
	}
	return nil
}
