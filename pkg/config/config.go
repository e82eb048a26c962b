package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// DBPath is the SQLite file holding the cart, last order and theme.
	DBPath string

	// CheckoutEnabled is a product-level toggle: when false the cart is
	// fully usable but placing an order is refused.
	CheckoutEnabled bool
}

func Load() Config {
	return Config{
		AppEnv:          getEnv("APP_ENV", "dev"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBPath:          getEnv("STOREFRONT_DB", defaultDBPath()),
		CheckoutEnabled: getEnvBool("CHECKOUT_ENABLED", true),
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "storefront.db"
	}
	return filepath.Join(home, ".storefront", "storefront.db")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}
