package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	LLMProviderGemini = "gemini"
	LLMProviderVertex = "vertex"
)

// Config is built once at process start and handed to every constructor.
type Config struct {
	Port     string
	LogLevel string
	GinMode  string

	PostgresURI string

	RedisAddr          string
	RateLimitPerMinute int

	MongoURI       string
	MongoDB        string
	AdvisoryLogTTL time.Duration

	LLMProvider    string
	GeminiAPIKey   string
	VertexProject  string
	VertexLocation string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMTimeout     time.Duration
}

// Load reads the process environment. Call godotenv.Load first if a .env file is used.
func Load() (*Config, error) {
	c := &Config{
		Port:           firstEnv("8080", "PORT"),
		LogLevel:       firstEnv("info", "LOG_LEVEL"),
		GinMode:        os.Getenv("GIN_MODE"),
		PostgresURI:    firstEnv("", "POSTGRES_URI", "SUPABASE_DB_URL"),
		RedisAddr:      firstEnv("", "REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        firstEnv("alumni_advisor", "MONGO_DB"),
		LLMProvider:    strings.ToLower(firstEnv(LLMProviderGemini, "LLM_PROVIDER")),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		VertexProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		VertexLocation: firstEnv("us-central1", "GOOGLE_CLOUD_LOCATION"),
		LLMModel:       firstEnv("gemini-2.0-flash", "LLM_MODEL"),
	}

	var err error
	if c.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if c.AdvisoryLogTTL, err = durationEnv("ADVISORY_LOG_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if c.LLMTemperature, err = floatEnv("LLM_TEMPERATURE", 0.7); err != nil {
		return nil, err
	}
	if c.LLMMaxTokens, err = intEnv("LLM_MAX_TOKENS", 2500); err != nil {
		return nil, err
	}
	if c.LLMTimeout, err = durationEnv("LLM_TIMEOUT", 90*time.Second); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.PostgresURI == "" {
		return errors.New("POSTGRES_URI (or SUPABASE_DB_URL) environment variable is not set")
	}
	switch c.LLMProvider {
	case LLMProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY environment variable is not set")
		}
	case LLMProviderVertex:
		if c.VertexProject == "" {
			return errors.New("GOOGLE_CLOUD_PROJECT environment variable is not set")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q (want %q or %q)", c.LLMProvider, LLMProviderGemini, LLMProviderVertex)
	}
	if c.LLMMaxTokens <= 0 {
		return errors.New("LLM_MAX_TOKENS must be > 0")
	}
	if c.LLMTimeout <= 0 {
		return errors.New("LLM_TIMEOUT must be > 0")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be >= 0")
	}
	return nil
}

func firstEnv(def string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, v, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, v, err)
	}
	return f, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	return d, nil
}
