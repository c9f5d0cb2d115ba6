package service

import (
	"context"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/ports"
	"envelope-orchestrator/internal/util"
	"errors"
	"fmt"
	"log"
	"time"
)

// CredentialsService : выбор аккаунта провайдера для запроса.
// Сохранённые токены обновляются, если до истечения осталось меньше tokenSafety
type CredentialsService struct {
	accounts    ports.AccountRepository
	oauth       ports.OAuthClient
	apiBaseURL  string
	tokenSafety time.Duration
	now         func() time.Time
}

func NewCredentialsService(accounts ports.AccountRepository, oauth ports.OAuthClient, apiBaseURL string, tokenSafety time.Duration) *CredentialsService {
	return &CredentialsService{
		accounts:    accounts,
		oauth:       oauth,
		apiBaseURL:  apiBaseURL,
		tokenSafety: tokenSafety,
		now:         time.Now,
	}
}

// Resolve : указанный аккаунт пользователя, затем его аккаунт по умолчанию,
// затем сервисный JWT-грант
func (s *CredentialsService) Resolve(ctx context.Context, userID, accountID string) (*model.ProviderCredentials, error) {
	exec := s.accounts.Executor()

	if accountID != "" {
		account, err := s.accounts.GetByAccountID(ctx, exec, userID, accountID)
		if err == nil {
			creds, err := s.fromAccount(ctx, account)
			if err == nil {
				return creds, nil
			}
			log.Printf("[CredentialsService] аккаунт %s недоступен: %v", accountID, err)
		} else {
			log.Printf("[CredentialsService] аккаунт %s пользователя %s не найден: %v", accountID, userID, err)
		}
	}

	account, err := s.accounts.GetDefault(ctx, exec, userID)
	if err == nil {
		creds, err := s.fromAccount(ctx, account)
		if err == nil {
			return creds, nil
		}
		log.Printf("[CredentialsService] аккаунт по умолчанию %s недоступен: %v", account.AccountID, err)
	} else if errors.Is(err, model.ErrAccountNotFound) == false {
		log.Printf("[CredentialsService] ошибка поиска аккаунта по умолчанию: %v", err)
	}

	creds, err := s.oauth.ServiceCredentials(ctx)
	if err != nil {
		return nil, util.LogError("[CredentialsService] не удалось получить сервисный токен", err)
	}
	return creds, nil
}

// ResolveStored : только сохранённые аккаунты. Различает отсутствие аккаунтов
// у пользователя и отсутствие указанного аккаунта
func (s *CredentialsService) ResolveStored(ctx context.Context, userID, accountID string) (*model.ProviderCredentials, error) {
	exec := s.accounts.Executor()

	var account *model.Account
	var err error
	if accountID != "" {
		account, err = s.accounts.GetByAccountID(ctx, exec, userID, accountID)
	} else {
		account, err = s.accounts.GetDefault(ctx, exec, userID)
	}

	if errors.Is(err, model.ErrAccountNotFound) {
		accounts, listErr := s.accounts.ListByUser(ctx, exec, userID)
		if listErr != nil {
			return nil, listErr
		}
		if len(accounts) == 0 {
			return nil, fmt.Errorf("%w: пользователь %s", model.ErrNoAccounts, userID)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return s.fromAccount(ctx, account)
}

func (s *CredentialsService) fromAccount(ctx context.Context, account *model.Account) (*model.ProviderCredentials, error) {
	accessToken := account.AccessToken

	if s.now().Add(s.tokenSafety).Before(account.ExpiresAt) == false {
		log.Printf("[CredentialsService] токен аккаунта %s истекает, обновляем", account.AccountID)

		tokens, err := s.oauth.RefreshTokens(ctx, account.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("%w: обновление токена аккаунта %s: %v", model.ErrCredentials, account.AccountID, err)
		}

		refreshToken := tokens.RefreshToken
		if refreshToken == "" {
			refreshToken = account.RefreshToken
		}
		expiresAt := s.now().Add(time.Duration(tokens.ExpiresIn) * time.Second)

		err = s.accounts.UpdateTokens(ctx, s.accounts.Executor(), account.AccountID, tokens.AccessToken, refreshToken, expiresAt)
		if err != nil {
			return nil, util.LogError("[CredentialsService] не удалось сохранить обновлённые токены", err)
		}
		accessToken = tokens.AccessToken
	}

	return &model.ProviderCredentials{
		AccessToken: accessToken,
		AccountID:   account.AccountID,
		APIBaseURL:  s.apiBaseURL,
	}, nil
}

func (s *CredentialsService) WithClock(now func() time.Time) *CredentialsService {
	s.now = now
	return s
}
