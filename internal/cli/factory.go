package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/internal/config"
	"github.com/aretw0/textops/internal/logging"
	"github.com/aretw0/textops/pkg/adapters/memory"
	"github.com/aretw0/textops/pkg/adapters/redis"
	"github.com/aretw0/textops/pkg/observability"
	"github.com/aretw0/textops/pkg/persistence/middleware"
	"github.com/aretw0/textops/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Runtime bundles the plugin with everything the commands share.
type Runtime struct {
	Config   config.Config
	Level    *slog.LevelVar
	Logger   *slog.Logger
	Plugin   *textops.Plugin
	Registry *prometheus.Registry

	closers []func() error
}

// NewRuntime builds the plugin described by cfg. Logs go to logOut.
// A redis cache that cannot be reached is reported, not tolerated.
func NewRuntime(ctx context.Context, cfg config.Config, logOut io.Writer) (*Runtime, error) {
	level := new(slog.LevelVar)
	level.Set(cfg.Level())
	logger := logging.NewWithWriter(logOut, level, logging.Format(cfg.LogFormat))

	rt := &Runtime{
		Config:   cfg,
		Level:    level,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}
	rt.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(rt.Registry)

	cache, err := rt.newCache(ctx)
	if err != nil {
		return nil, err
	}

	opts := []textops.Option{
		textops.WithLanguage(cfg.Language()),
		textops.WithLogger(logger),
		textops.WithLifecycleHooks(observability.ChainHooks(
			observability.LoggingHooks(logger),
			metrics.Hooks(),
		)),
	}
	if cache != nil {
		opts = append(opts, textops.WithCache(cache))
	}
	rt.Plugin = textops.New(opts...)

	logger.Debug("runtime ready",
		"locale", cfg.Language().String(),
		"cache", cfg.Cache.Backend,
		"version", textops.Version,
	)
	return rt, nil
}

func (rt *Runtime) newCache(ctx context.Context) (ports.ResultCache, error) {
	cache, err := rt.newBackend(ctx)
	if err != nil || cache == nil {
		return cache, err
	}

	key, err := rt.Config.Cache.Key()
	if err != nil {
		return nil, err
	}
	if key == nil {
		return cache, nil
	}
	encrypt, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
	if err != nil {
		return nil, err
	}
	return middleware.Chain(cache, encrypt), nil
}

func (rt *Runtime) newBackend(ctx context.Context) (ports.ResultCache, error) {
	c := rt.Config.Cache
	switch c.Backend {
	case config.CacheMemory:
		return memory.NewCache(memory.WithMaxEntries(c.MaxEntries)), nil
	case config.CacheRedis:
		cache := redis.NewCache(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithPrefix(c.Redis.Prefix),
			redis.WithTTL(c.TTL),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			cache.Close()
			return nil, fmt.Errorf("redis cache at %s: %w", c.Redis.Addr, err)
		}
		rt.closers = append(rt.closers, cache.Close)
		return cache, nil
	default:
		return nil, nil
	}
}

// Apply updates the parts of the runtime that can change without a restart:
// the log level and the case mapping language.
func (rt *Runtime) Apply(cfg config.Config) {
	rt.Level.Set(cfg.Level())
	rt.Plugin.SetLanguage(cfg.Language())
	rt.Logger.Info("configuration reloaded", "locale", cfg.Language().String(), "log_level", cfg.Level().String())
}

// Close releases the cache connection, if any.
func (rt *Runtime) Close() error {
	var first error
	for _, c := range rt.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
