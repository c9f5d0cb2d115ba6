package repository

import (
	"context"
	"encoding/json"
	"envelope-orchestrator/config"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/util"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

type TokenCacheRepository struct {
	client *config.RedisClient
}

func NewTokenCacheRepository(rdb *config.RedisClient) *TokenCacheRepository {
	return &TokenCacheRepository{rdb}
}

func (r *TokenCacheRepository) SetToken(ctx context.Context, key string, token *model.CachedToken, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(token)
	if err != nil {
		return util.LogError("[TokenCache] ошибка сериализации токена", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(key), data, ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[TokenCache] ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *TokenCacheRepository) GetToken(ctx context.Context, key string) (*model.CachedToken, error) {
	val, err := r.client.Client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("[TokenCache] ошибка получения токена из Redis", err)
	}

	var token model.CachedToken
	if err := json.Unmarshal([]byte(val), &token); err != nil {
		return nil, util.LogError("[TokenCache] ошибка десериализации токена из кэша", err)
	}
	return &token, nil
}

func (r *TokenCacheRepository) key(name string) string {
	return fmt.Sprintf("token:%s", name)
}
