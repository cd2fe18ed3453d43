package main

import (
	"flag"

	"github.com/dracory/env"
)

// Config holds the demo server settings.
type Config struct {
	HTTPPort int    // Port to listen on (default: 8080)
	BasePath string // Mount path for the task routes (default: "/tasks/")
	DBDriver string // Database driver (postgres, mysql, sqlite, sqlserver)
	DBDSN    string // Database DSN
}

// LoadConfig reads flags/env with sensible defaults.
// Flags take precedence over env.
func LoadConfig() (Config, error) {
	var cfg Config

	// Optionally load from .env files (missing files are ignored inside the lib)
	env.Load(".env")

	cfg.HTTPPort = env.GetIntOrDefault("HTTP_PORT", 8080)
	cfg.BasePath = env.GetStringOrDefault("BASE_PATH", "/tasks/")
	cfg.DBDriver = env.GetStringOrDefault("DB_DRIVER", "sqlite")
	cfg.DBDSN = env.GetStringOrDefault("DB_DSN", "tasks.db")

	port := flag.Int("port", cfg.HTTPPort, "HTTP port to listen on")
	base := flag.String("base", cfg.BasePath, "Path prefix to mount the task routes under")
	driver := flag.String("driver", cfg.DBDriver, "Database driver (postgres, mysql, sqlite, sqlserver)")
	dsn := flag.String("dsn", cfg.DBDSN, "Database DSN")
	flag.Parse()

	cfg.HTTPPort = *port
	cfg.BasePath = *base
	cfg.DBDriver = *driver
	cfg.DBDSN = *dsn

	return cfg, nil
}
