package redis_a_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/sondurak/garage-be/internal/adapters/redis_adapter"
	"github.com/sondurak/garage-be/test/helpers"
)

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{
			name:  "stores_and_retrieves_string",
			key:   "test:string",
			value: "test value",
		},
		{
			name: "stores_and_retrieves_struct",
			key:  "test:struct",
			value: struct {
				Plate string `json:"plate"`
				Brand string `json:"brand"`
			}{Plate: "34 ABC 123", Brand: "Renault"},
		},
		{
			name:  "stores_and_retrieves_slice",
			key:   "test:slice",
			value: []string{"item1", "item2", "item3"},
		},
		{
			name: "stores_and_retrieves_map",
			key:  "test:map",
			value: map[string]interface{}{
				"field1": "value1",
				"field2": 123,
				"field3": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cache.Set(ctx, tt.key, tt.value)
			require.NoError(t, err)

			var result interface{}
			if _, ok := tt.value.(string); ok {
				var strResult string
				err = cache.Get(ctx, tt.key, &strResult)
				result = strResult
			} else if _, ok := tt.value.([]string); ok {
				var sliceResult []string
				err = cache.Get(ctx, tt.key, &sliceResult)
				result = sliceResult
			} else {
				// For complex types, compare the raw JSON
				var jsonResult json.RawMessage
				err = cache.Get(ctx, tt.key, &jsonResult)
				require.NoError(t, err)

				expectedJSON, _ := json.Marshal(tt.value)
				assert.JSONEq(t, string(expectedJSON), string(jsonResult))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, result)
		})
	}
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	err := cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond)
	require.NoError(t, err)

	var result string
	err = cache.Get(ctx, "ttl:test", &result)
	require.NoError(t, err)
	assert.Equal(t, "value", result)

	// Fast forward time in miniredis
	mr.FastForward(200 * time.Millisecond)

	err = cache.Get(ctx, "ttl:test", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	keys := []string{"del:1", "del:2", "del:3"}
	for _, key := range keys {
		err := cache.Set(ctx, key, "value")
		require.NoError(t, err)
	}

	err := cache.Delete(ctx, keys...)
	require.NoError(t, err)

	for _, key := range keys {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err)
	}
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	// Matches how write paths invalidate computed analysis results
	keysToDelete := []string{"analysis:all", "analysis:all:from:2024-01-01", "analysis:all:to:2024-06-30"}
	keysToKeep := []string{"vehicle:plate:34ABC123:history", "session:blacklist:abc"}

	for _, key := range append(keysToDelete, keysToKeep...) {
		err := cache.Set(ctx, key, "value")
		require.NoError(t, err)
	}

	err := cache.DeletePattern(ctx, "analysis:*")
	require.NoError(t, err)

	for _, key := range keysToDelete {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err)
	}

	for _, key := range keysToKeep {
		var result string
		err := cache.Get(ctx, key, &result)
		require.NoError(t, err)
		assert.Equal(t, "value", result)
	}
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	fetchCount := 0
	fetchFunc := func() (interface{}, error) {
		fetchCount++
		return "fetched value", nil
	}

	// First call should fetch
	var result1 string
	err := cache.GetOrSet(ctx, "getorset:test", &result1, fetchFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "fetched value", result1)
	assert.Equal(t, 1, fetchCount)

	// Second call should get from cache
	var result2 string
	err = cache.GetOrSet(ctx, "getorset:test", &result2, fetchFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "fetched value", result2)
	assert.Equal(t, 1, fetchCount)
}

func TestCache_SetNX(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	ok, err := cache.SetNX(ctx, "setnx:test", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetNX(ctx, "setnx:test", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	var result string
	err = cache.Get(ctx, "setnx:test", &result)
	require.NoError(t, err)
	assert.Equal(t, "first", result)
}

func TestCache_ExistsAndTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	err := cache.SetWithTTL(ctx, "session:blacklist:jti-1", true, time.Hour)
	require.NoError(t, err)

	exists, err := cache.Exists(ctx, "session:blacklist:jti-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = cache.Exists(ctx, "session:blacklist:jti-2")
	require.NoError(t, err)
	assert.False(t, exists)

	ttl, err := cache.TTL(ctx, "session:blacklist:jti-1")
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
}

func TestCache_BuildKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   redis_a.CacheKeyPrefix
		parts    []string
		expected string
	}{
		{
			name:     "vehicle_history_key",
			prefix:   redis_a.PrefixVehicle,
			parts:    []string{"plate", "34ABC123", "history"},
			expected: "vehicle:plate:34ABC123:history",
		},
		{
			name:     "analysis_key",
			prefix:   redis_a.PrefixAnalysis,
			parts:    []string{"all"},
			expected: "analysis:all",
		},
		{
			name:     "session_blacklist_key",
			prefix:   redis_a.PrefixSession,
			parts:    []string{"blacklist", "jti-123"},
			expected: "session:blacklist:jti-123",
		},
		{
			name:     "no_parts",
			prefix:   redis_a.PrefixReport,
			parts:    []string{},
			expected: "report",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := redis_a.BuildKey(tt.prefix, tt.parts...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
