package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,        default=5000"`
	Env         string        `env:"ENV,         default=development"`
	JWTSecret   string        `env:"JWT_SECRET,  required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,   default=24h"`
	LogLevel    string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=*"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	// LoginRateLimit uses the limiter format "<limit>-<period>", e.g. 10-M.
	LoginRateLimit string `env:"LOGIN_RATE_LIMIT, default=10-M"`

	CEO   CEOConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// CEOConfig is the account bootstrapped at startup when it does not exist.
type CEOConfig struct {
	Email    string `env:"CEO_EMAIL,    default=ceo@company.com"`
	Password string `env:"CEO_PASSWORD, default=CEO@123456"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=business_portal"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	PoolSize int           `env:"REDIS_POOL_SIZE, default=10"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,   default=3s"`
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the environment using go-envconfig.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
