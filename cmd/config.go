package cmd

import (
	"fmt"
	"time"

	"settlement/internal/core/domain/model/kernel"

	"github.com/caarlos0/env/v11"
)

// Config carries every runtime setting of the settlement service.
// Values come from the environment, with a .env file loaded first when
// present.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"settlement"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// PlatformFeeBasisPoints is the platform's cut of the item amount,
	// in basis points (500 = 5%).
	PlatformFeeBasisPoints int64 `env:"PLATFORM_FEE_BASIS_POINTS" envDefault:"500"`

	// LocationMinInterval throttles courier device samples per order.
	LocationMinInterval time.Duration `env:"LOCATION_MIN_INTERVAL" envDefault:"30s"`

	// StaleTransitThreshold is how long an in-transit order may go without
	// movement before the monitoring job flags it.
	StaleTransitThreshold time.Duration `env:"STALE_TRANSIT_THRESHOLD" envDefault:"30m"`

	// ArbiterID identifies the platform operator allowed to resolve
	// disputes and payout requests.
	ArbiterID string `env:"ARBITER_ID"`
}

// NewConfig parses the configuration from the environment.
func NewConfig() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.ArbiterID == "" {
		return Config{}, fmt.Errorf("ENV ARBITER_ID must be set")
	}
	if _, err := kernel.UUIDFromString(cfg.ArbiterID); err != nil {
		return Config{}, fmt.Errorf("ENV ARBITER_ID must be a UUID: %w", err)
	}

	return cfg, nil
}

// ArbiterUUID returns the parsed arbiter identifier.
// Config validation guarantees the value parses.
func (c Config) ArbiterUUID() kernel.UUID {
	id, _ := kernel.UUIDFromString(c.ArbiterID)
	return id
}
