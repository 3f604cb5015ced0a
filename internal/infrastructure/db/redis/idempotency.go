package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL = 24 * time.Hour
	// pendingTTL bounds how long a crashed request can hold a key.
	pendingTTL = time.Minute

	pendingValue = "pending"
	claimRetries = 2
)

// IdempotencyStore maps client-supplied Idempotency-Key values to the id of
// the resource the first request created.
// Key format: idempotency:<scope>:<key>
//
// A key moves through two states: "pending" while the claiming request runs,
// then the resource id once it completes.
type IdempotencyStore struct {
	client     *redis.Client
	ttl        time.Duration
	pendingTTL time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL, pendingTTL: pendingTTL}
}

// Claim reserves key with SETNX. The loser reads the current value: the
// resource id when the winner has completed, "" while it is still pending.
func (s *IdempotencyStore) Claim(ctx context.Context, scope, key string) (bool, string, error) {
	k := idempotencyKey(scope, key)

	for i := 0; i < claimRetries; i++ {
		ok, err := s.client.SetNX(ctx, k, pendingValue, s.pendingTTL).Result()
		if err != nil {
			return false, "", fmt.Errorf("idempotency claim: %w", err)
		}
		if ok {
			return true, "", nil
		}

		val, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			// Released or expired between the two calls.
			continue
		}
		if err != nil {
			return false, "", fmt.Errorf("idempotency claim: %w", err)
		}
		if val == pendingValue {
			return false, "", nil
		}
		return false, val, nil
	}
	return false, "", nil
}

// Complete replaces the pending marker with resourceID for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, scope, key, resourceID string) error {
	if err := s.client.Set(ctx, idempotencyKey(scope, key), resourceID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops the claim so the client can retry the request.
func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, idempotencyKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func idempotencyKey(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}
