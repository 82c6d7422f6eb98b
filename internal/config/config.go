package config

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/textops/internal/logging"
	"github.com/aretw0/textops/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "textops.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TEXTOPS_"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config is the plugin configuration (textops.yaml).
type Config struct {
	Locale       string      `yaml:"locale"`
	LogLevel     string      `yaml:"log_level"`
	LogFormat    string      `yaml:"log_format"`
	MaxInputSize int64       `yaml:"max_input_size"`
	HTTP         HTTPConfig  `yaml:"http"`
	MCP          MCPConfig   `yaml:"mcp"`
	Cache        CacheConfig `yaml:"cache"`
}

type HTTPConfig struct {
	Addr    string `yaml:"addr"`
	Metrics bool   `yaml:"metrics"`
}

type MCPConfig struct {
	Transport string `yaml:"transport"`
	Port      int    `yaml:"port"`
}

type CacheConfig struct {
	Backend    string        `yaml:"backend"`
	MaxEntries int           `yaml:"max_entries"`
	TTL        time.Duration `yaml:"ttl"`
	Redis      RedisConfig   `yaml:"redis"`
	// EncryptionKey is a base64 AES-256 key. When set, cached results are sealed.
	EncryptionKey string `yaml:"encryption_key"`
}

// Key decodes EncryptionKey. A nil key means encryption is off.
func (c CacheConfig) Key() ([]byte, error) {
	if c.EncryptionKey == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(c.EncryptionKey)
	if err != nil {
		return nil, err
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("got %d bytes, want 32", len(key))
	}
	return key, nil
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Locale:       "und",
		LogLevel:     "info",
		LogFormat:    string(logging.FormatText),
		MaxInputSize: 1 << 20,
		HTTP: HTTPConfig{
			Addr:    ":8080",
			Metrics: true,
		},
		MCP: MCPConfig{
			Transport: TransportStdio,
			Port:      8081,
		},
		Cache: CacheConfig{
			Backend:    CacheNone,
			MaxEntries: 1024,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "textops:result:",
			},
		},
	}
}

// Load reads a configuration file (YAML or JSON), applies TEXTOPS_* overrides and validates the result.
// A missing file is not an error: defaults (plus overrides) are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Parse(data, &cfg); err != nil {
			return cfg, domain.NewConfigParseError(path, err)
		}
	case !os.IsNotExist(err):
		return cfg, domain.NewConfigParseError(path, err)
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, cfg.Validate()
}

// Parse decodes YAML or JSON (a YAML subset) into cfg. Keys absent from data keep their current value.
func Parse(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	return Decode(raw, cfg)
}

// Decode applies a generic map (as produced by YAML/JSON parsers) onto cfg.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// ApplyEnv overrides fields from TEXTOPS_* variables looked up through getenv.
// Unparsable numeric overrides are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	str := func(name string, dst *string) {
		if v := strings.TrimSpace(getenv(EnvPrefix + name)); v != "" {
			*dst = v
		}
	}

	str("LOCALE", &c.Locale)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("HTTP_ADDR", &c.HTTP.Addr)
	str("MCP_TRANSPORT", &c.MCP.Transport)
	str("CACHE_BACKEND", &c.Cache.Backend)
	str("REDIS_ADDR", &c.Cache.Redis.Addr)
	str("REDIS_PASSWORD", &c.Cache.Redis.Password)
	str("CACHE_ENCRYPTION_KEY", &c.Cache.EncryptionKey)

	if v := getenv(EnvPrefix + "MAX_INPUT_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil && size > 0 {
			c.MaxInputSize = size
		}
	}
}

// Validate checks every enumerated or bounded field.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return domain.NewConfigValidationError("locale", c.Locale, "not a valid BCP 47 language tag")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return domain.NewConfigValidationError("log_level", c.LogLevel, "must be one of debug, info, warn, error")
	}
	switch logging.Format(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return domain.NewConfigValidationError("log_format", c.LogFormat, "must be text or json")
	}
	if c.MaxInputSize <= 0 {
		return domain.NewConfigValidationError("max_input_size", c.MaxInputSize, "must be positive")
	}
	switch c.MCP.Transport {
	case TransportStdio, TransportSSE:
	default:
		return domain.NewConfigValidationError("mcp.transport", c.MCP.Transport, "must be stdio or sse")
	}
	if c.MCP.Port <= 0 || c.MCP.Port > 65535 {
		return domain.NewConfigValidationError("mcp.port", c.MCP.Port, "must be between 1 and 65535")
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return domain.NewConfigValidationError("cache.backend", c.Cache.Backend, "must be none, memory or redis")
	}
	if c.Cache.MaxEntries < 0 {
		return domain.NewConfigValidationError("cache.max_entries", c.Cache.MaxEntries, "must not be negative")
	}
	if c.Cache.TTL < 0 {
		return domain.NewConfigValidationError("cache.ttl", c.Cache.TTL, "must not be negative")
	}
	if _, err := c.Cache.Key(); err != nil {
		return domain.NewConfigValidationError("cache.encryption_key", "<redacted>", "must be a base64 encoded 32 byte key: "+err.Error())
	}
	return nil
}

// Language returns the parsed locale. Call Validate first; invalid tags yield language.Und.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
