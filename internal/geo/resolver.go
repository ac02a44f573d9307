// Package geo resolves zip codes to locations used to narrow searches to a
// congressional or municipal district.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a zip code has no usable location: either
// the code is unknown or its record carries no state and district shape.
var ErrNotFound = errors.New("zip code not found")

// Location is the resolved position of a zip code.
type Location struct {
	StateCode string  `json:"state_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Store looks up zip code locations from the relational database.
type Store interface {
	Lookup(ctx context.Context, zipcode string) (Location, error)
}

// Resolver answers zip code lookups with a Redis cache in front of the
// store. A nil cache disables caching; lookups then always hit the store.
type Resolver struct {
	store    Store
	cache    *goredis.Client
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewResolver constructs a Resolver. cache may be nil.
func NewResolver(store Store, cache *goredis.Client, cacheTTL time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Resolve returns the location for a zip code. Cache failures fall through
// to the store so a degraded Redis never fails a lookup; only ErrNotFound
// and store errors surface to the caller.
func (r *Resolver) Resolve(ctx context.Context, zipcode string) (Location, error) {
	if loc, ok := r.fromCache(ctx, zipcode); ok {
		cacheHits.Inc()
		return loc, nil
	}
	cacheMisses.Inc()

	loc, err := r.store.Lookup(ctx, zipcode)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Location{}, ErrNotFound
		}
		return Location{}, fmt.Errorf("resolve zipcode %s: %w", zipcode, err)
	}

	r.toCache(ctx, zipcode, loc)
	return loc, nil
}

func (r *Resolver) fromCache(ctx context.Context, zipcode string) (Location, bool) {
	if r.cache == nil {
		return Location{}, false
	}
	raw, err := r.cache.Get(ctx, cacheKey(zipcode)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.logger.Warn("zipcode cache read failed", "zipcode", zipcode, "error", err)
		}
		return Location{}, false
	}
	var loc Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		r.logger.Warn("zipcode cache entry corrupt", "zipcode", zipcode, "error", err)
		return Location{}, false
	}
	return loc, true
}

func (r *Resolver) toCache(ctx context.Context, zipcode string, loc Location) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(zipcode), raw, r.cacheTTL).Err(); err != nil {
		r.logger.Warn("zipcode cache write failed", "zipcode", zipcode, "error", err)
	}
}

func cacheKey(zipcode string) string {
	return "zipcode:" + zipcode
}
