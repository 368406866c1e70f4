package config

import (
	"context"
	"os"
	"time"

	"github.com/psychsphere/backend/internal/log"
	pkgredis "github.com/psychsphere/backend/pkg/redis"
	"github.com/psychsphere/backend/pkg/utils"
)

// Cache is the optional Redis-backed cache. It is used for connectivity
// diagnostics only; inquiry data never passes through it.
type Cache interface {
	// Get returns ("", nil) when a key is not found.
	Get(ctx context.Context, key string) (string, error)
	// Set uses ttl=0 for no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type CacheConfig struct {
	Host     string
	Port     string
	Password string
}

func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     utils.GetEnvOrDefault("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

func (cc *CacheConfig) IsConfigured() bool {
	return cc.Host != ""
}

func (cc *CacheConfig) NewCacheOrNil(logger *log.Logger) Cache {
	if !cc.IsConfigured() {
		logger.Info("Cache (Redis) is not configured; proceeding without external cache")
		return nil
	}

	cache, err := pkgredis.NewRedisCache(&pkgredis.Config{
		Host:     cc.Host,
		Port:     cc.Port,
		Password: cc.Password,
		DB:       0,
	})
	if err != nil {
		logger.Error("Failed to create Cache (Redis)", "error", err)
		return nil
	}

	logger.Info("Cache (Redis) connected successfully")
	return cache
}

func CloseCache(cache Cache, logger *log.Logger) {
	if cache == nil {
		return
	}

	if err := cache.Close(); err != nil {
		logger.Error("Failed to close cache", "error", err)
	} else {
		logger.Info("Cache connection closed")
	}
}
