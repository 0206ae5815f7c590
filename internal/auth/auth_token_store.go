package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "auth:revoked:"

//go:generate mockgen -source=auth_token_store.go -destination=mock/auth_token_store_mock.go -package=mock
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	Claim(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

type redisTokenStore struct {
	rdb redis.Cmdable
}

// NewRedisTokenStore keeps a deny-list of refresh token ids. Entries expire
// together with the token they revoke.
func NewRedisTokenStore(rdb redis.Cmdable) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

// Claim revokes jti and reports whether this call did it. Exactly one of
// several concurrent callers wins.
func (s *redisTokenStore) Claim(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}
	return s.rdb.SetNX(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Result()
}
