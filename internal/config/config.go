package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Kharcha"`
	}

	DB struct {
		// Driver selects the storage backend: "sqlite" keeps everything
		// in a local file, "postgres" talks to a server.
		Driver string `envconfig:"DB_DRIVER" default:"sqlite"`
		Path   string `envconfig:"DB_PATH" default:"kharcha.db"`

		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"kharcha"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"./exports"`
	}

	Seed struct {
		SampleData bool `envconfig:"SEED_SAMPLE_DATA" default:"true"`
	}
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DB.Driver == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
	}

	return c.DB.Path
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
