// Package bizcache is a Redis read-through cache for resolved businesses.
// Every failure is logged and swallowed: a cold or broken cache degrades to
// the store, never to an error.
package bizcache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"cardwise/internal/domain/entity"
	"cardwise/pkg/contextx"
	"cardwise/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

const keyPrefix = "cardwise:business:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) Get(ctx context.Context, id string) (*entity.Business, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Warn("business cache get failed", logx.Error(err))
		}
		return nil, false
	}

	var business entity.Business
	if err := json.Unmarshal(payload, &business); err != nil {
		logger(ctx).Warn("business cache decode failed", logx.Error(err))
		return nil, false
	}

	return &business, true
}

func (c *Cache) Set(ctx context.Context, business *entity.Business) {
	payload, err := json.Marshal(business)
	if err != nil {
		logger(ctx).Warn("business cache encode failed", logx.Error(err))
		return
	}

	if err := c.client.Set(ctx, keyPrefix+business.ID, payload, c.ttl).Err(); err != nil {
		logger(ctx).Warn("business cache set failed", logx.Error(err))
	}
}
