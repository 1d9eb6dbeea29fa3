// Package cache stores generated sales tip results in Redis so repeated
// lookups for the same contact skip the engine.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"starzcrm_backend/internal/salestips/domain"
	"starzcrm_backend/platform/config"
)

const keyPrefix = "salestips:v1:"

// Cache reads and writes engine results by key.
type Cache interface {
	Get(ctx context.Context, key string) (domain.Result, bool, error)
	Set(ctx context.Context, key string, result domain.Result) error
}

type keyInput struct {
	Lead    domain.LeadRecord `json:"lead"`
	Action  domain.Action     `json:"action"`
	AgeBand string            `json:"ageBand"`
}

// Key derives the cache key for a lead, action and age band.
func Key(lead domain.LeadRecord, action domain.Action, ageBand string) string {
	// Marshalling a struct of strings and ints cannot fail.
	raw, _ := json.Marshal(keyInput{Lead: lead, Action: action, AgeBand: ageBand})
	sum := sha256.Sum256(raw)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Redis is a Cache backed by a Redis server.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis connects to the configured Redis URL.
func NewRedis(cfg config.CacheConfig) (*Redis, error) {
	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewWithClient(redis.NewClient(opt), cfg.GetSalesTipsCacheTTL()), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Get returns the cached result for key. A missing key is not an error.
func (r *Redis) Get(ctx context.Context, key string) (domain.Result, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Result{}, false, nil
	}
	if err != nil {
		return domain.Result{}, false, fmt.Errorf("redis get: %w", err)
	}

	var result domain.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.Result{}, false, fmt.Errorf("decode cached result: %w", err)
	}
	return result, true, nil
}

// Set stores result under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, result domain.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Nop is used when no Redis URL is configured. Every lookup misses.
type Nop struct{}

func (Nop) Get(context.Context, string) (domain.Result, bool, error) {
	return domain.Result{}, false, nil
}

func (Nop) Set(context.Context, string, domain.Result) error {
	return nil
}

var (
	_ Cache = (*Redis)(nil)
	_ Cache = Nop{}
)
