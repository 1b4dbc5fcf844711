package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebank/ledger/internal/models"
)

func TestAccountCache(t *testing.T) {
	ctx := context.Background()

	account := &models.Account{
		ID:           1,
		Number:       12345,
		Name:         "John Doe",
		Balance:      decimal.NewFromInt(1000),
		SpecialLimit: decimal.NewFromInt(500),
	}
	data, err := json.Marshal(account)
	require.NoError(t, err)

	t.Run("miss then hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewAccountCache(client, time.Minute)

		mock.ExpectGet("account:12345").RedisNil()
		_, ok := cache.Get(ctx, 12345)
		assert.False(t, ok)

		mock.ExpectGet("account:12345").SetVal(string(data))
		cached, ok := cache.Get(ctx, 12345)
		require.True(t, ok)
		assert.Equal(t, int64(12345), cached.Number)
		assert.True(t, cached.Balance.Equal(decimal.NewFromInt(1000)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("set", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewAccountCache(client, time.Minute)

		mock.ExpectSet("account:12345", data, time.Minute).SetVal("OK")
		cache.Set(ctx, account)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalidate", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewAccountCache(client, time.Minute)

		mock.ExpectDel("account:12345", "account:67890").SetVal(2)
		cache.Invalidate(ctx, 12345, 67890)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt entry is treated as a miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewAccountCache(client, time.Minute)

		mock.ExpectGet("account:12345").SetVal("not json")
		_, ok := cache.Get(ctx, 12345)
		assert.False(t, ok)
	})

	t.Run("nil client disables caching", func(t *testing.T) {
		cache := NewAccountCache(nil, time.Minute)

		_, ok := cache.Get(ctx, 12345)
		assert.False(t, ok)
		cache.Set(ctx, account)
		cache.Invalidate(ctx, 12345)
	})

	t.Run("nil cache is safe", func(t *testing.T) {
		var cache *AccountCache

		_, ok := cache.Get(ctx, 12345)
		assert.False(t, ok)
		cache.Set(ctx, account)
		cache.Invalidate(ctx, 12345)
	})
}
