// Package cache stores unavailable-period calendars in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
)

const keyPrefix = "boat:unavailable:"

// entry is the stored form of a period. Reference is unexported in the
// domain type so it travels as a plain string.
type entry struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	ReferenceID string    `json:"referenceId,omitempty"`
	Start       time.Time `json:"startDate"`
	End         time.Time `json:"endDate"`
	Reason      string    `json:"reason,omitempty"`
	Details     string    `json:"details,omitempty"`
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func key(boatID uint) string {
	return fmt.Sprintf("%s%d", keyPrefix, boatID)
}

// versionKey counts invalidations of a boat's calendar. It has no TTL: an
// expired counter would restart at a value an old reader may still hold.
func versionKey(boatID uint) string {
	return fmt.Sprintf("%sver:%d", keyPrefix, boatID)
}

// Get treats every failure as a miss. A miss returns the current version for
// the following Set; -1 when it could not be read, which no Set will match.
func (c *RedisCache) Get(ctx context.Context, boatID uint) ([]domainavailability.Period, int64, bool) {
	vals, err := c.client.MGet(ctx, key(boatID), versionKey(boatID)).Result()
	if err != nil {
		c.log.Warn("cache get failed", zap.Uint("boat_id", boatID), zap.Error(err))
		return nil, -1, false
	}

	version, err := parseVersion(vals[1])
	if err != nil {
		c.log.Warn("cache version corrupt", zap.Uint("boat_id", boatID), zap.Error(err))
		return nil, -1, false
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}
	var entries []entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		c.log.Warn("cache entry corrupt", zap.Uint("boat_id", boatID), zap.Error(err))
		return nil, version, false
	}
	return fromEntries(entries), version, true
}

// Set writes under WATCH on the version key, so an Invalidate racing the
// write aborts it.
func (c *RedisCache) Set(ctx context.Context, boatID uint, version int64, periods []domainavailability.Period) {
	raw, err := json.Marshal(toEntries(periods))
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey(boatID)).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != version {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key(boatID), raw, c.ttl)
			return nil
		})
		return err
	}, versionKey(boatID))

	switch {
	case err == nil, errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		// stale calendars are simply not cached
	default:
		c.log.Warn("cache set failed", zap.Uint("boat_id", boatID), zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, boatID uint) {
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, versionKey(boatID))
		p.Del(ctx, key(boatID))
		return nil
	})
	if err != nil {
		c.log.Warn("cache invalidate failed", zap.Uint("boat_id", boatID), zap.Error(err))
	}
}

var errStale = errors.New("cache: calendar version moved")

func parseVersion(v any) (int64, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected version type %T", v)
	}
	return strconv.ParseInt(s, 10, 64)
}

func toEntries(periods []domainavailability.Period) []entry {
	out := make([]entry, 0, len(periods))
	for _, p := range periods {
		ref, _ := p.Reference.BookingID()
		out = append(out, entry{
			ID:          p.ID,
			Type:        string(p.Type),
			ReferenceID: ref,
			Start:       p.Start,
			End:         p.End,
			Reason:      p.Reason,
			Details:     p.Details,
		})
	}
	return out
}

func fromEntries(entries []entry) []domainavailability.Period {
	out := make([]domainavailability.Period, 0, len(entries))
	for _, e := range entries {
		typ, err := domainavailability.ParseRefType(e.Type)
		if err != nil {
			typ = domainavailability.RefBlocked
		}
		ref := domainavailability.NoReference()
		if e.ReferenceID != "" {
			ref = domainavailability.BookingRef(e.ReferenceID)
		}
		out = append(out, domainavailability.Period{
			ID:        e.ID,
			Type:      typ,
			Reference: ref,
			Start:     e.Start,
			End:       e.End,
			Reason:    e.Reason,
			Details:   e.Details,
		})
	}
	return out
}

var _ domainavailability.Cache = (*RedisCache)(nil)
