package auth

import (
	"context"
	"time"

	"trainboard/internal/cache"
)

const revokedTokenKeyPrefix = "blacklist:access_token:"

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

// TokenStore keeps revoked token ids in redis until the token would have
// expired anyway.
type TokenStore struct {
	cache cache.Store
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(store cache.Store) *TokenStore {
	return &TokenStore{cache: store}
}

// Revoke blacklists a token id. Already expired tokens are ignored.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s == nil || tokenID == "" || ttl <= 0 || s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked checks the blacklist. Cache failures read as not revoked.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	if s == nil || tokenID == "" || s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, revokedTokenKeyPrefix+tokenID)
	if err != nil {
		return false
	}
	return data != nil
}
