package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	Timezone  string
	DBPath    string
	DataDir   string
	CacheTTL  time.Duration
	PortalURL string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttl := 10 * time.Minute
	if v := get("CACHE_TTL_MINUTES", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		Timezone:  get("TZ", "Asia/Kolkata"),
		DBPath:    get("DB_PATH", "ecoclub.db"),
		DataDir:   get("DATA_DIR", "data"),
		CacheTTL:  ttl,
		PortalURL: get("PORTAL_URL", ""),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
