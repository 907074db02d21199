package registry

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRegistry(t *testing.T) (service.HouseNumberRegistry, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRedisRegistry(client, "test", logger), server
}

func registries(t *testing.T) map[string]service.HouseNumberRegistry {
	t.Helper()

	redisRegistry, _ := newRedisRegistry(t)

	return map[string]service.HouseNumberRegistry{
		"memory": NewMemoryRegistry(),
		"redis":  redisRegistry,
	}
}

func sortedClaims(claims []entity.HouseNumberClaim) []entity.HouseNumberClaim {
	sort.Slice(claims, func(i, j int) bool { return claims[i].Number < claims[j].Number })

	return claims
}

func TestRegistry_ClaimAndRelease(t *testing.T) {
	for name, registry := range registries(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			ok, err := registry.Claim(ctx, 27, 1)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = registry.Claim(ctx, 27, 2)
			require.NoError(t, err)
			assert.False(t, ok, "number held by another building")

			ok, err = registry.Claim(ctx, 27, 1)
			require.NoError(t, err)
			assert.True(t, ok, "reclaim by the holder")

			require.NoError(t, registry.Release(ctx, 27, 2))
			ok, err = registry.Claim(ctx, 27, 2)
			require.NoError(t, err)
			assert.False(t, ok, "release by a non-holder is ignored")

			require.NoError(t, registry.Release(ctx, 27, 1))
			ok, err = registry.Claim(ctx, 27, 2)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestRegistry_SeedMergesClaims(t *testing.T) {
	for name, registry := range registries(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := registry.Claim(ctx, 99, 9)
			require.NoError(t, err)
			_, err = registry.Claim(ctx, 27, 5)
			require.NoError(t, err)

			require.NoError(t, registry.Seed(ctx, []entity.HouseNumberClaim{
				{Number: 12, BuildingID: 1},
				{Number: 27, BuildingID: 2},
			}))

			claims, err := registry.Snapshot(ctx)
			require.NoError(t, err)
			assert.Equal(t, []entity.HouseNumberClaim{
				{Number: 12, BuildingID: 1},
				{Number: 27, BuildingID: 5},
				{Number: 99, BuildingID: 9},
			}, sortedClaims(claims))

			ok, err := registry.Claim(ctx, 12, 3)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRegistry_SeedEmptyKeepsClaims(t *testing.T) {
	for name, registry := range registries(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := registry.Claim(ctx, 5, 1)
			require.NoError(t, err)
			require.NoError(t, registry.Seed(ctx, nil))

			claims, err := registry.Snapshot(ctx)
			require.NoError(t, err)
			assert.Equal(t, []entity.HouseNumberClaim{{Number: 5, BuildingID: 1}}, claims)
		})
	}
}

func TestRedisRegistry_ReseedKeepsOtherProcessClaims(t *testing.T) {
	server := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	newProcess := func() service.HouseNumberRegistry {
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		return NewRedisRegistry(client, "test", logger)
	}
	ctx := context.Background()
	first, second := newProcess(), newProcess()

	ok, err := first.Claim(ctx, 41, 8)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, second.Seed(ctx, []entity.HouseNumberClaim{{Number: 12, BuildingID: 1}}))

	assert.Equal(t, "8", server.HGet("test:house_numbers", "41"))
	assert.Equal(t, "1", server.HGet("test:house_numbers", "12"))

	ok, err = second.Claim(ctx, 41, 9)
	require.NoError(t, err)
	assert.False(t, ok, "claim made before the reseed still wins")
}

func TestRegistry_ConcurrentClaimsAreExclusive(t *testing.T) {
	for name, registry := range registries(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				winners []int64
			)
			for buildingID := int64(1); buildingID <= 20; buildingID++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					ok, err := registry.Claim(ctx, 42, buildingID)
					assert.NoError(t, err)
					if ok {
						mu.Lock()
						winners = append(winners, buildingID)
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			assert.Len(t, winners, 1)
		})
	}
}

func TestRedisRegistry_KeyPrefix(t *testing.T) {
	registry, server := newRedisRegistry(t)

	_, err := registry.Claim(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, "3", server.HGet("test:house_numbers", "7"))
}

func TestMemoryRegistry_ClaimHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryRegistry().Claim(ctx, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
