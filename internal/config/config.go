package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds everything the app reads from the environment. DatabaseURL may
// be empty: the storefront then runs against the JSON file stores only.
type Config struct {
	Addr        string `env:"SNACK_SHOP_ADDR" envDefault:":8080"`
	DataDir     string `env:"SNACK_SHOP_DATA_DIR" envDefault:"./data"`
	UploadsDir  string `env:"SNACK_SHOP_UPLOADS_DIR" envDefault:"./uploads"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
