// Package config loads the service configuration from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"

	StoreDriverMemory = "memory"
	StoreDriverMySQL  = "mysql"
)

type Config struct {
	ServerAddress  string        `envconfig:"SERVER_ADDRESS" default:":9090" validate:"required"`
	ContextTimeout time.Duration `envconfig:"CONTEXT_TIMEOUT" default:"30s" validate:"gt=0"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	JWTSecret      string        `envconfig:"JWT_SECRET" validate:"required"`

	StoreDriver  string `envconfig:"STORE_DRIVER" default:"mysql" validate:"oneof=memory mysql"`
	AutoMigrate  bool   `envconfig:"AUTO_MIGRATE" default:"false"`
	DatabaseHost string `envconfig:"DATABASE_HOST" validate:"required_if=StoreDriver mysql"`
	DatabasePort string `envconfig:"DATABASE_PORT" default:"3306"`
	DatabaseUser string `envconfig:"DATABASE_USER" validate:"required_if=StoreDriver mysql"`
	DatabasePass string `envconfig:"DATABASE_PASS"`
	DatabaseName string `envconfig:"DATABASE_NAME" validate:"required_if=StoreDriver mysql"`

	CacheDriver   string `envconfig:"CACHE_DRIVER" default:"memory" validate:"oneof=memory redis"`
	CacheCapacity int    `envconfig:"CACHE_CAPACITY" default:"0" validate:"min=0"`
	CacheHost     string `envconfig:"CACHE_HOST" default:"localhost"`
	CachePort     string `envconfig:"CACHE_PORT" default:"6379"`
	CachePass     string `envconfig:"CACHE_PASS"`
	CacheDB       int    `envconfig:"CACHE_DB" default:"0" validate:"min=0"`

	// SeedAlbums lists the album ids known to the memory store
	SeedAlbums []string `envconfig:"SEED_ALBUMS"`

	// InvalidationBroadcast shares invalidations of the memory cache between instances over redis.
	// A peer keeps answering from its own cache until the redis message reaches it; use the
	// redis cache driver when every instance must see a completed like immediately.
	InvalidationBroadcast bool `envconfig:"INVALIDATION_BROADCAST" default:"false"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the go-sql-driver/mysql data source name of the like store
func (c Config) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	val.Add("multiStatements", "true")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", c.DatabaseUser, c.DatabasePass, c.DatabaseHost, c.DatabasePort, c.DatabaseName, val.Encode())
}

// NeedsRedis reports whether any component talks to redis
func (c Config) NeedsRedis() bool {
	return c.CacheDriver == CacheDriverRedis || c.InvalidationBroadcast
}

func (c Config) RedisAddr() string {
	return c.CacheHost + ":" + c.CachePort
}
