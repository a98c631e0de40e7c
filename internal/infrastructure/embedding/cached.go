package embedding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sync"

	"interest-match/internal/infrastructure/cache"
	"interest-match/internal/metrics"
)

// Source is the upstream embedder a Cached wraps.
type Source interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cached memoizes embeddings in process memory with an optional Redis second
// level, so a given interest string is embedded at most once per process and
// survives restarts when Redis is up. Vectors are treated as immutable once
// stored.
type Cached struct {
	source Source
	redis  *cache.Redis
	model  string

	mu  sync.RWMutex
	mem map[string][]float32
}

func NewCached(source Source, redis *cache.Redis, model string) *Cached {
	return &Cached{
		source: source,
		redis:  redis,
		model:  model,
		mem:    make(map[string][]float32),
	}
}

func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	c.mu.RLock()
	v, ok := c.mem[text]
	c.mu.RUnlock()
	if ok {
		metrics.EmbeddingCacheOps.WithLabelValues("hit_memory").Inc()
		return v, nil
	}

	key := c.key(text)

	var fromRedis []float32
	if found, err := c.redis.GetJSON(ctx, key, &fromRedis); err == nil && found && len(fromRedis) > 0 {
		metrics.EmbeddingCacheOps.WithLabelValues("hit_redis").Inc()
		c.store(text, fromRedis)
		return fromRedis, nil
	}

	metrics.EmbeddingCacheOps.WithLabelValues("miss").Inc()
	v, err := c.source.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.store(text, v)
	_ = c.redis.SetJSON(ctx, key, v, 0)
	return v, nil
}

func (c *Cached) store(text string, v []float32) {
	c.mu.Lock()
	c.mem[text] = v
	c.mu.Unlock()
}

func (c *Cached) key(text string) string {
	sum := sha1.Sum([]byte(text))
	return "embed:" + c.model + ":" + hex.EncodeToString(sum[:])
}
