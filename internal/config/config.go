// Package config loads ReadyNurse settings from an optional config.yaml,
// a .env file and READYNURSE_* environment variables, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/readynurse/internal/llm"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "READYNURSE"

// Leaderboard backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	Env         string      `mapstructure:"env"`
	DBPath      string      `mapstructure:"db_path"`
	UserID      string      `mapstructure:"user_id"`
	LogFile     string      `mapstructure:"log_file"`
	LLM         LLM         `mapstructure:"llm"`
	Leaderboard Leaderboard `mapstructure:"leaderboard"`
	Storage     Storage     `mapstructure:"storage"`
}

type LLM struct {
	Enabled    bool   `mapstructure:"enabled"`
	LogCalls   bool   `mapstructure:"log_calls"`
	Endpoint   string `mapstructure:"endpoint"`
	Model      string `mapstructure:"model"`
	TimeoutMs  int    `mapstructure:"timeout_ms"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type Leaderboard struct {
	Backend       string `mapstructure:"backend"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	KeyPrefix     string `mapstructure:"key_prefix"`
}

// Storage configures the S3-compatible bucket for avatar uploads. Uploads are
// disabled when Endpoint is empty.
type Storage struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
}

func (s Storage) Enabled() bool { return s.Endpoint != "" }

// Load reads configuration. dotenvPaths are loaded first and never override
// variables already present in the environment; missing files are ignored.
func Load(dotenvPaths ...string) (*Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, p := range dotenvPaths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", p, err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".readynurse"))
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := llm.DefaultConfig()

	v.SetDefault("env", "local")
	v.SetDefault("db_path", defaultDataPath("readynurse.db"))
	v.SetDefault("user_id", "")
	v.SetDefault("log_file", defaultDataPath("readynurse.log"))

	v.SetDefault("llm.enabled", def.Enabled)
	v.SetDefault("llm.log_calls", def.LogCalls)
	v.SetDefault("llm.endpoint", def.Endpoint)
	v.SetDefault("llm.model", def.Model)
	v.SetDefault("llm.timeout_ms", def.TimeoutMs)
	v.SetDefault("llm.max_retries", def.MaxRetries)

	v.SetDefault("leaderboard.backend", BackendSQLite)
	v.SetDefault("leaderboard.redis_addr", "localhost:6379")
	v.SetDefault("leaderboard.redis_password", "")
	v.SetDefault("leaderboard.redis_db", 0)
	v.SetDefault("leaderboard.key_prefix", "readynurse")

	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.bucket", "avatars")
	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.public_url", "")
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".readynurse", name)
}

func (c *Config) Validate() error {
	switch c.Leaderboard.Backend {
	case BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown leaderboard backend %q (want sqlite or redis)", c.Leaderboard.Backend)
	}
	if c.LLM.TimeoutMs <= 0 {
		return fmt.Errorf("llm.timeout_ms must be positive")
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must not be negative")
	}
	if c.Storage.Enabled() && c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required when storage.endpoint is set")
	}
	return nil
}

// LLMConfig overlays the loaded settings on the client defaults, keeping the
// per-task tuning.
func (c *Config) LLMConfig() llm.LLMConfig {
	out := llm.DefaultConfig()
	out.Enabled = c.LLM.Enabled
	out.LogCalls = c.LLM.LogCalls
	if c.LLM.Endpoint != "" {
		out.Endpoint = c.LLM.Endpoint
	}
	if c.LLM.Model != "" {
		out.Model = c.LLM.Model
	}
	out.TimeoutMs = c.LLM.TimeoutMs
	out.MaxRetries = c.LLM.MaxRetries
	return out
}
