package ports

import (
	"context"
	"envelope-orchestrator/internal/model"
)

// OAuthClient : OAuth-эндпоинты провайдера подписи
type OAuthClient interface {
	// ServiceCredentials : токен сервисного пользователя по JWT-гранту и его аккаунт по умолчанию
	ServiceCredentials(ctx context.Context) (*model.ProviderCredentials, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*model.OAuthTokens, error)
}
