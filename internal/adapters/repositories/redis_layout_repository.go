package repositories

import (
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/layout"
	"arena-route-planner/internal/platform/obs"
	"arena-route-planner/internal/ports"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisLayoutIndexKey = "layouts"
	redisLayoutPrefix   = "layout:"
)

// Redis-backed implementation of the LayoutRepository port.
//
// Each layout is a hash at layout:<name> with fields id, document and
// updated_at_ns; the set "layouts" indexes the stored names.
type RedisLayoutRepository struct {
	Client *redis.Client
}

func NewRedisLayoutRepository(client *redis.Client) *RedisLayoutRepository {
	return &RedisLayoutRepository{Client: client}
}

func redisLayoutKey(name string) string { return redisLayoutPrefix + name }

func (r *RedisLayoutRepository) SaveLayout(ctx context.Context, name string, m *domain.RouteModel) (_ ports.LayoutRecord, err error) {
	defer obs.Time(ctx, "layout.redis.Save", "name", name)(&err)

	if r.Client == nil {
		return ports.LayoutRecord{}, errors.New("redis layout repository: client is nil")
	}

	name, err = normalizeName(name)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout: %w", err)
	}

	doc, err := layout.Marshal(m)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout %q: %w", name, err)
	}

	// The id is claimed with HSETNX and read back in the same transaction,
	// so concurrent first saves of one name agree on a single id.
	key := redisLayoutKey(name)
	now := time.Now().UTC()
	var idCmd *redis.StringCmd
	_, err = r.Client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSetNX(ctx, key, "id", uuid.NewString())
		p.HSet(ctx, key,
			"document", string(doc),
			"updated_at_ns", strconv.FormatInt(now.UnixNano(), 10),
		)
		p.SAdd(ctx, redisLayoutIndexKey, name)
		idCmd = p.HGet(ctx, key, "id")
		return nil
	})
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout %q: write hash: %w: %w", name, domain.ErrIOFailure, err)
	}
	id := idCmd.Val()

	return ports.LayoutRecord{ID: id, Name: name, UpdatedAt: now}, nil
}

func (r *RedisLayoutRepository) LoadLayout(ctx context.Context, name string) (_ *domain.RouteModel, err error) {
	defer obs.Time(ctx, "layout.redis.Load", "name", name)(&err)

	if r.Client == nil {
		return nil, errors.New("redis layout repository: client is nil")
	}

	doc, err := r.Client.HGet(ctx, redisLayoutKey(name), "document").Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load layout %q: %w", name, domain.ErrLayoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w: %w", name, domain.ErrIOFailure, err)
	}

	m, err := layout.Deserialize([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	return m, nil
}

func (r *RedisLayoutRepository) ListLayouts(ctx context.Context) (_ []ports.LayoutRecord, err error) {
	defer obs.Time(ctx, "layout.redis.List")(&err)

	if r.Client == nil {
		return nil, errors.New("redis layout repository: client is nil")
	}

	names, err := r.Client.SMembers(ctx, redisLayoutIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list layouts: read index: %w: %w", domain.ErrIOFailure, err)
	}
	slices.Sort(names)

	out := make([]ports.LayoutRecord, 0, len(names))
	for _, name := range names {
		vals, err := r.Client.HMGet(ctx, redisLayoutKey(name), "id", "updated_at_ns").Result()
		if err != nil {
			return nil, fmt.Errorf("list layouts: read %q: %w: %w", name, domain.ErrIOFailure, err)
		}

		id, _ := vals[0].(string)
		if id == "" {
			// Index entry without a hash; skip it.
			continue
		}
		rec := ports.LayoutRecord{ID: id, Name: name}
		if ns, ok := vals[1].(string); ok {
			if n, err := strconv.ParseInt(ns, 10, 64); err == nil {
				rec.UpdatedAt = time.Unix(0, n).UTC()
			}
		}
		out = append(out, rec)
	}

	return out, nil
}
