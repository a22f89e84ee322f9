package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8081"`
	LogFile         string        `envconfig:"LOG_FILE" default:"./aradamart.log"`
	TemplatesReload bool          `envconfig:"TEMPLATES_RELOAD" default:"false"`
	JWTSecret       string        `envconfig:"JWT_SECRET" default:"aradamart-dev-secret"`
	Catalog         CatalogConfig
	Activity        ActivityConfig
}

type CatalogConfig struct {
	BaseURL  string        `envconfig:"CATALOG_BASE_URL" default:"https://dummyjson.com"`
	Timeout  time.Duration `envconfig:"CATALOG_TIMEOUT" default:"15s"`
	PageSize int           `envconfig:"PAGE_SIZE" default:"10"`
}

// ActivityConfig controls the activity log cap and its optional archives.
// An empty DSN or broker list disables that sink.
type ActivityConfig struct {
	Cap          int    `envconfig:"ACTIVITY_CAP" default:"1000"`
	DSN          string `envconfig:"ACTIVITY_DSN"`
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"aradamart.activity"`
}

// Brokers splits the comma separated broker list.
func (a ActivityConfig) Brokers() []string {
	var out []string
	for _, b := range strings.Split(a.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using process environment")
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing config: %w", err)
	}
	if cfg.Catalog.PageSize <= 0 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Activity.Cap < 0 {
		return Config{}, fmt.Errorf("ACTIVITY_CAP must not be negative, got %d", cfg.Activity.Cap)
	}
	log.Printf("[config] PORT=%s CATALOG_BASE_URL=%s PAGE_SIZE=%d ACTIVITY_CAP=%d ACTIVITY_DSN=%q KAFKA_BROKERS=%q LOG_FILE=%s",
		cfg.Port, cfg.Catalog.BaseURL, cfg.Catalog.PageSize, cfg.Activity.Cap, cfg.Activity.DSN, cfg.Activity.KafkaBrokers, cfg.LogFile)
	return cfg, nil
}
