// Package config reads runtime settings from the environment, after an
// optional .env file has been loaded.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every setting the storefront process reads at startup
type Config struct {
	Driver      string // sqlite3 or mysql
	StorePath   string // sqlite database file
	DBUser      string
	DBPass      string
	DBAddr      string
	DBName      string
	Namespace   string // prefix of every persisted key
	ListenAddr  string
	LogMode     string // development or production
	LogLevel    string
	SeedOnStart bool
}

// LoadEnvFile loads the given .env files (".env" when none are named).
// A missing file is reported to the caller but is not fatal.
func LoadEnvFile(files ...string) error {
	return godotenv.Load(files...)
}

// Load builds a Config from the current environment
func Load() Config {
	return Config{
		Driver:      getenv("STORE_DRIVER", "sqlite3"),
		StorePath:   getenv("STORE_PATH", "storefront.db"),
		DBUser:      os.Getenv("DBUSER"),
		DBPass:      os.Getenv("DBPASS"),
		DBAddr:      getenv("DBADDR", "127.0.0.1:3306"),
		DBName:      getenv("DBNAME", "storefront"),
		Namespace:   getenv("STORE_NAMESPACE", "storefront"),
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		LogMode:     getenv("LOG_MODE", "development"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		SeedOnStart: getbool("SEED_ON_START", true),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
