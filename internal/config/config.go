// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/pathway"
	"github.com/abhisek/pathwise/internal/resources"
)

// DefaultProviderDelay spaces provider calls in interactive use.
const DefaultProviderDelay = 250 * time.Millisecond

// Config is the process configuration.
type Config struct {
	// DBPath overrides the default record store location.
	DBPath string

	ProviderTimeout time.Duration `validate:"gt=0"`
	ProviderDelay   time.Duration `validate:"gte=0"`
	StrictURLs      bool
	TopicCap        int `validate:"gte=1,lte=20"`

	// RedisURL enables the shared search cache.
	RedisURL string        `validate:"omitempty,url"`
	CacheTTL time.Duration `validate:"gte=0"`

	// SearchAPIKey and SearchCX enable the web search provider.
	SearchAPIKey string
	SearchCX     string `validate:"required_with=SearchAPIKey"`

	LLM llm.Config `validate:"-"`
}

// Error reports an invalid setting.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("config %s: %v", e.Key, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ProviderTimeout: resources.DefaultTimeout,
		ProviderDelay:   DefaultProviderDelay,
		TopicCap:        pathway.DefaultTopicCap,
		CacheTTL:        resources.DefaultCacheTTL,
		LLM:             llm.DefaultConfig(),
	}
}

// Load reads envFile (or ./.env when envFile is empty and present) into the
// process environment without overriding variables already set, then
// builds and validates the Config.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// FromEnv overlays PATHWISE_* variables on Default.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.DBPath = os.Getenv("PATHWISE_DB")
	cfg.RedisURL = os.Getenv("PATHWISE_REDIS_URL")
	cfg.SearchAPIKey = os.Getenv("PATHWISE_SEARCH_API_KEY")
	cfg.SearchCX = os.Getenv("PATHWISE_SEARCH_CX")
	cfg.LLM = llm.ConfigFromEnv()

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"PATHWISE_PROVIDER_TIMEOUT", &cfg.ProviderTimeout},
		{"PATHWISE_PROVIDER_DELAY", &cfg.ProviderDelay},
		{"PATHWISE_CACHE_TTL", &cfg.CacheTTL},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, &Error{Key: d.key, Err: err}
		}
		*d.dst = parsed
	}

	if v := os.Getenv("PATHWISE_STRICT_URLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, &Error{Key: "PATHWISE_STRICT_URLS", Err: err}
		}
		cfg.StrictURLs = b
	}
	if v := os.Getenv("PATHWISE_TOPIC_CAP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, &Error{Key: "PATHWISE_TOPIC_CAP", Err: err}
		}
		cfg.TopicCap = n
	}
	return cfg, nil
}

// Validate checks ranges and cross-field requirements.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &Error{Key: verrs[0].Field(), Err: err}
		}
		return err
	}
	if err := c.LLM.Validate(); err != nil {
		return &Error{Key: "LLM", Err: err}
	}
	return nil
}

// Ranker returns the ranker settings derived from c.
func (c Config) Ranker() resources.Config {
	rc := resources.DefaultConfig()
	rc.Delay = c.ProviderDelay
	rc.StrictURLs = c.StrictURLs
	if c.StrictURLs {
		rc.Prober = resources.NewProber(c.ProviderTimeout)
	}
	return rc
}

// WebSearchEnabled reports whether web search credentials are present.
func (c Config) WebSearchEnabled() bool { return c.SearchAPIKey != "" && c.SearchCX != "" }
