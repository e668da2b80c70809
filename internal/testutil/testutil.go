// Package testutil provides redis fixtures for integration tests: a
// throwaway container plus helpers for seeding and flushing murajjah
// selection hashes.
package testutil

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
)

// selectionKeyPrefix mirrors the repository's key layout so fixtures land
// where the code under test reads them.
const selectionKeyPrefix = "takhteet:selection:"

func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	container, err := redismodule.Run(ctx, "redis:8-alpine")
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// SeedSelection writes a selection slot for a student directly, bypassing the
// repository's toggle path.
func SeedSelection(ctx context.Context, t *testing.T, client *redis.Client, student string, slot int, juz []int) {
	t.Helper()

	data, err := json.Marshal(juz)
	if err != nil {
		t.Fatalf("failed to marshal selection: %v", err)
	}
	if err := client.HSet(ctx, selectionKeyPrefix+student, strconv.Itoa(slot), data).Err(); err != nil {
		t.Fatalf("failed to seed selection: %v", err)
	}
}

// FlushSelections deletes every selection hash so tests sharing a container
// start clean.
func FlushSelections(ctx context.Context, t *testing.T, client *redis.Client) {
	t.Helper()

	keys, err := client.Keys(ctx, selectionKeyPrefix+"*").Result()
	if err != nil {
		t.Fatalf("failed to list selection keys: %v", err)
	}
	if len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		t.Fatalf("failed to flush selections: %v", err)
	}
}
