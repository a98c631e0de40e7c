package app

import (
	"log"

	"interest-match/internal/config"
	"interest-match/internal/domain/matching"
	"interest-match/internal/domain/user"
	"interest-match/internal/infrastructure/cache"
	"interest-match/internal/infrastructure/embedding"
	"interest-match/internal/infrastructure/store"
)

// Container wires the long-lived dependencies. The similarity strategy and
// its embedding provider are built once here and shared read-only across
// requests.
type Container struct {
	Config   config.Config
	Store    user.Store
	Strategy matching.Strategy

	cache *cache.Redis
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Store:  store.NewJSONFile(cfg.Match.DataFile),
	}

	switch cfg.Match.Strategy {
	case config.StrategySemantic:
		provider := embedding.NewProvider(embedding.Config{
			BaseURL: cfg.OpenAI.BaseURL,
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.EmbeddingModel,
		})
		c.cache = cache.NewRedis(logger)
		embedder := embedding.NewCached(provider, c.cache, provider.Model())
		c.Strategy = matching.NewSemantic(embedder, cfg.Match.Threshold)
	default:
		c.Strategy = matching.NewExact()
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.cache == nil {
		return nil
	}
	return c.cache.Close()
}
