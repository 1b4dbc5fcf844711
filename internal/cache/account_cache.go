package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/corebank/ledger/internal/models"
)

// AccountCache is a read-through cache for account lookups by number.
// A nil cache or nil redis client disables caching; every method is a
// no-op then, so the service keeps working when redis is down.
type AccountCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAccountCache(rdb *redis.Client, ttl time.Duration) *AccountCache {
	return &AccountCache{rdb: rdb, ttl: ttl}
}

func key(number int64) string {
	return fmt.Sprintf("account:%d", number)
}

func (c *AccountCache) Get(ctx context.Context, number int64) (*models.Account, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, key(number)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] get failed for account %d: %v", number, err)
		}
		return nil, false
	}

	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		log.Printf("[CACHE] corrupt entry for account %d: %v", number, err)
		return nil, false
	}
	return &account, true
}

func (c *AccountCache) Set(ctx context.Context, account *models.Account) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(account)
	if err != nil {
		log.Printf("[CACHE] marshal failed for account %d: %v", account.Number, err)
		return
	}
	if err := c.rdb.Set(ctx, key(account.Number), data, c.ttl).Err(); err != nil {
		log.Printf("[CACHE] set failed for account %d: %v", account.Number, err)
	}
}

func (c *AccountCache) Invalidate(ctx context.Context, numbers ...int64) {
	if c == nil || c.rdb == nil || len(numbers) == 0 {
		return
	}

	keys := make([]string, len(numbers))
	for i, n := range numbers {
		keys[i] = key(n)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] invalidate failed: %v", err)
	}
}
