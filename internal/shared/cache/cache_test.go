package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/redis/go-redis/v9"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		query     string
		want      string
	}{
		{"lowercases", "search", "IV Therapy", "search:iv therapy"},
		{"trims whitespace", "search", "  dental cleaning  ", "search:dental cleaning"},
		{"collapses inner spaces", "health", "dry   flaky\tskin", "health:dry flaky skin"},
		{"empty query", "health", "", "health:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.namespace, tt.query); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss for absent key")
	}

	c.Set(ctx, "k", "v", time.Minute)
	got, ok := c.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got != "v" {
		t.Errorf("Get() = %q, want %q", got, "v")
	}

	c.Set(ctx, "k", "v2", time.Minute)
	got, _ = c.Get(ctx, "k")
	if got != "v2" {
		t.Errorf("Get() after overwrite = %q, want %q", got, "v2")
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryWithClock(func() time.Time { return now })

	c.Set(ctx, "k", "v", 30*time.Minute)

	now = now.Add(29 * time.Minute)
	if _, ok := c.Get(ctx, "k"); !ok {
		t.Error("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Errorf("expected lazy eviction, got %d entries", c.Len())
	}
}

func TestMemoryZeroTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	c.Set(ctx, "k", "v", 0)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("zero TTL should not store")
	}
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisFromClient(client, zap.NewNop())
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss for absent key")
	}

	c.Set(ctx, "k", "v", time.Minute)
	got, ok := c.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("Get() = %q, %v; want %q, true", got, ok, "v")
	}

	mr.FastForward(2 * time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected miss after TTL elapsed")
	}
}

func TestRedisCacheDegradesOnError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisFromClient(client, zap.NewNop())
	ctx := context.Background()

	mr.Close()

	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected miss when redis is down")
	}
	// Set must not panic when redis is down.
	c.Set(ctx, "k", "v", time.Minute)
}
