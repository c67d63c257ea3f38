package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"matchmaker/internal/domain/matching"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Log       LogConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled is false when no Redis host is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

type JWTConfig struct {
	AccessSecret string
}

type LogConfig struct {
	Level string
	JSON  bool
}

type MatchingConfig struct {
	SkillPolicy     string
	ThresholdCap    int
	BatchMaxIDs     int
	BatchWorkers    int
	DefaultPageSize int
	MaxPageSize     int
}

type RateLimitConfig struct {
	BatchMax    int
	BatchWindow time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	v.SetDefault("DB_POOL_MAX_CONNS", 10)
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("MATCH_SKILL_POLICY", matching.PolicySuperset)
	v.SetDefault("MATCH_THRESHOLD_CAP", matching.DefaultThresholdCap)
	v.SetDefault("MATCH_BATCH_MAX_IDS", 100)
	v.SetDefault("MATCH_BATCH_WORKERS", 16)
	v.SetDefault("MATCH_DEFAULT_PAGE_SIZE", 10)
	v.SetDefault("MATCH_MAX_PAGE_SIZE", 100)
	v.SetDefault("RATE_LIMIT_BATCH_MAX", 60)
	v.SetDefault("RATE_LIMIT_BATCH_WINDOW", time.Minute)
}

// Load reads configuration from the environment, an optional .env file in the
// working directory and an optional config file.
func Load(configFile string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret: req("JWT_ACCESS_SECRET"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:   v.GetInt32("DB_POOL_MAX_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Log = LogConfig{
		Level: strings.ToLower(opt("LOG_LEVEL")),
		JSON:  v.GetBool("LOG_JSON"),
	}

	cfg.Matching = MatchingConfig{
		SkillPolicy:     strings.ToLower(opt("MATCH_SKILL_POLICY")),
		ThresholdCap:    v.GetInt("MATCH_THRESHOLD_CAP"),
		BatchMaxIDs:     v.GetInt("MATCH_BATCH_MAX_IDS"),
		BatchWorkers:    v.GetInt("MATCH_BATCH_WORKERS"),
		DefaultPageSize: v.GetInt("MATCH_DEFAULT_PAGE_SIZE"),
		MaxPageSize:     v.GetInt("MATCH_MAX_PAGE_SIZE"),
	}

	cfg.RateLimit = RateLimitConfig{
		BatchMax:    v.GetInt("RATE_LIMIT_BATCH_MAX"),
		BatchWindow: v.GetDuration("RATE_LIMIT_BATCH_WINDOW"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := matching.PolicyByName(c.Matching.SkillPolicy, c.Matching.ThresholdCap); err != nil {
		return err
	}
	if c.Matching.ThresholdCap < 1 {
		return fmt.Errorf("MATCH_THRESHOLD_CAP must be positive")
	}
	if c.Matching.BatchMaxIDs < 1 || c.Matching.BatchMaxIDs > 1000 {
		return fmt.Errorf("MATCH_BATCH_MAX_IDS must be between 1 and 1000")
	}
	if c.Matching.BatchWorkers < 1 {
		return fmt.Errorf("MATCH_BATCH_WORKERS must be positive")
	}
	if c.Matching.DefaultPageSize < 1 || c.Matching.MaxPageSize < c.Matching.DefaultPageSize {
		return fmt.Errorf("page sizes must satisfy 1 <= MATCH_DEFAULT_PAGE_SIZE <= MATCH_MAX_PAGE_SIZE")
	}
	if c.RateLimit.BatchMax < 0 {
		return fmt.Errorf("RATE_LIMIT_BATCH_MAX must not be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
