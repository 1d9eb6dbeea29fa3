package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starzcrm_backend/internal/salestips/domain"
)

func newTestCache(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client, 15*time.Minute), srv
}

func TestKeyIsStableAndDistinct(t *testing.T) {
	lead := domain.LeadRecord{Company: "Metro HVAC", LeadSource: domain.SourceReferral, Budget: 12000}

	k1 := Key(lead, domain.ActionCalling, "first_hour")
	k2 := Key(lead, domain.ActionCalling, "first_hour")
	assert.Equal(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, keyPrefix))
	assert.Len(t, strings.TrimPrefix(k1, keyPrefix), 64)

	assert.NotEqual(t, k1, Key(lead, domain.ActionClosing, "first_hour"))
	assert.NotEqual(t, k1, Key(lead, domain.ActionCalling, "first_day"))

	lead.Budget = 12001
	assert.NotEqual(t, k1, Key(lead, domain.ActionCalling, "first_hour"))
}

func TestRedisRoundTripWithTTL(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()
	result := domain.Result{
		Tips:                []domain.SalesTip{{ID: "hvac-emergency-calls", Confidence: 100}},
		LeadAnalysis:        domain.LeadAnalysis{LeadScore: 100, UrgencyLevel: domain.UrgencyImmediate},
		RecommendedApproach: "Call now.",
	}

	require.NoError(t, c.Set(ctx, "k", result))
	assert.Equal(t, 15*time.Minute, srv.TTL("k"))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, result.Tips, got.Tips)
	assert.Equal(t, result.LeadAnalysis.LeadScore, got.LeadAnalysis.LeadScore)

	srv.FastForward(16 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGetCorruptValue(t *testing.T) {
	c, srv := newTestCache(t)
	require.NoError(t, srv.Set("bad", "{not json"))

	_, ok, err := c.Get(context.Background(), "bad")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	c := NewWithClient(client, time.Minute)

	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), "k", domain.Result{}))
}
