package ports

import (
	"context"
	"envelope-orchestrator/internal/model"
	"github.com/jmoiron/sqlx"
	"time"
)

// AccountRepository : SQL слой аккаунтов провайдера подписи
type AccountRepository interface {
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userID string) ([]model.Account, error)
	GetByAccountID(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (*model.Account, error)
	GetDefault(ctx context.Context, exec sqlx.ExtContext, userID string) (*model.Account, error)
	SetDefault(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (bool, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (bool, error)
	UpdateTokens(ctx context.Context, exec sqlx.ExtContext, accountID, accessToken, refreshToken string, expiresAt time.Time) error
	// BeginTX : возвращает исполнителя транзакции, rollback и commit
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
	Executor() sqlx.ExtContext
}

type AccountService interface {
	ListAccounts(ctx context.Context, userID string) ([]model.Account, error)
	GetAccount(ctx context.Context, userID, accountID string) (*model.Account, error)
	SetDefault(ctx context.Context, userID, accountID string) error
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// CredentialsResolver : выбирает токен и адрес API провайдера для запроса
type CredentialsResolver interface {
	// Resolve : аккаунт пользователя, затем аккаунт по умолчанию, затем сервисный JWT-грант
	Resolve(ctx context.Context, userID, accountID string) (*model.ProviderCredentials, error)
	// ResolveStored : только сохранённые аккаунты, без запасного гранта
	ResolveStored(ctx context.Context, userID, accountID string) (*model.ProviderCredentials, error)
}
