package ports

import (
	"context"
	"envelope-orchestrator/internal/model"
	"time"
)

// TokenCache : Redis слой для токенов внешних сервисов
type TokenCache interface {
	GetToken(ctx context.Context, key string) (*model.CachedToken, error)
	SetToken(ctx context.Context, key string, token *model.CachedToken, ttl time.Duration) error
}
