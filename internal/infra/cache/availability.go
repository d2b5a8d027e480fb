package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "availability:"
	genPrefix = "availability:gen:"
)

// KV is the subset of redis.Cmdable the cache uses.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type entry struct {
	Generation int64                  `json:"gen"`
	Stays      []queries.StayInterval `json:"stays"`
}

// AvailabilityCache stores the confirmed stays of a property as JSON, tagged
// with the generation they were loaded under. A nil client turns every call
// into a miss.
type AvailabilityCache struct {
	client KV
	ttl    time.Duration
}

func NewAvailabilityCache(client KV, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func key(propertyID uuid.UUID) string {
	return keyPrefix + propertyID.String()
}

func genKey(propertyID uuid.UUID) string {
	return genPrefix + propertyID.String()
}

// Generation returns the invalidation counter; a property never invalidated is at 0.
func (c *AvailabilityCache) Generation(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	if c.client == nil {
		return 0, nil
	}
	gen, err := c.client.Get(ctx, genKey(propertyID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *AvailabilityCache) Get(ctx context.Context, propertyID uuid.UUID) ([]queries.StayInterval, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}

	vals, err := c.client.MGet(ctx, key(propertyID), genKey(propertyID)).Result()
	if err != nil {
		return nil, false, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, false, nil
	}
	current, err := parseGeneration(vals[1])
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, false, err
	}
	if e.Generation != current {
		return nil, false, nil
	}
	if e.Stays == nil {
		e.Stays = []queries.StayInterval{}
	}
	return e.Stays, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, propertyID uuid.UUID, generation int64, stays []queries.StayInterval) error {
	if c.client == nil {
		return nil
	}

	raw, err := json.Marshal(entry{Generation: generation, Stays: stays})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(propertyID), raw, c.ttl).Err()
}

// Invalidate moves the property to a new generation before dropping the entry.
// A reader that loaded its stays under the old generation may still write them
// back, but Get will not serve them.
func (c *AvailabilityCache) Invalidate(ctx context.Context, propertyID uuid.UUID) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Incr(ctx, genKey(propertyID)).Err(); err != nil {
		return err
	}
	return c.client.Del(ctx, key(propertyID)).Err()
}

func parseGeneration(v any) (int64, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, errors.New("unexpected generation value")
	}
	return strconv.ParseInt(s, 10, 64)
}
