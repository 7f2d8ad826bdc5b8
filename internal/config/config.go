package config

import (
	"os"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	// Optional first-run admin bootstrap. Seeding is skipped when
	// AdminEmail or AdminPassword is empty.
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {

	cfg := Config{

		AppPort: os.Getenv("APP_PORT"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AdminName:     os.Getenv("ADMIN_NAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	return cfg

}
