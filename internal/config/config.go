package config

import (
	"errors"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"       envDefault:"localhost:8080"`
	Database       string        `env:"DATABASE_URI"`
	DBHost         string        `env:"POSTGRES_HOST"     envDefault:"localhost"`
	DBPort         int           `env:"POSTGRES_PORT"     envDefault:"5432"`
	DBUser         string        `env:"POSTGRES_USER"     envDefault:"invoicedash"`
	DBPassword     string        `env:"POSTGRES_PASSWORD" envDefault:"invoicedash"`
	DBName         string        `env:"POSTGRES_DB"       envDefault:"invoicedash"`
	LogLvl         string        `env:"LOG_LVL"           envDefault:"info"`
	JWTSecret      string        `env:"JWT_SECRET"        envDefault:"invoicedash-secret"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"         envDefault:"1h"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START"  envDefault:"true"`
}

// New reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN returns DATABASE_URI when set, otherwise a URI built from the POSTGRES_* parts.
func (c *Config) DSN() string {
	if c.Database != "" {
		return c.Database
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
