package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"

	CatalogDriverPostgres = "postgres"
	CatalogDriverStatic   = "static"
)

// MaxRoundsMode controls whether max_rounds is enforced on quote/counter flows.
type MaxRoundsMode string

const (
	MaxRoundsLenient MaxRoundsMode = "lenient"
	MaxRoundsStrict  MaxRoundsMode = "strict"
)

// Config is the process configuration, read from the environment (and .env via godotenv).
type Config struct {
	Port int

	StorageDriver   string
	SessionsTable   string
	RoundsTable     string
	MandatesTable   string
	CatalogDriver   string
	DatabaseURL     string
	DefaultBaseCost decimal.Decimal

	DefaultMaxRounds int
	MaxRoundsMode    MaxRoundsMode
	MarkupSeed       int64

	MandateValidity     time.Duration
	MandateIssuer       string
	MandateAudience     string
	SigningKeyID        string
	SigningKeyPEM       string
	SigningKeyFile      string
	AutoVerifyOnExecute bool
}

// Load reads the configuration. Invalid values fall back to defaults with a log line
// rather than aborting startup.
func Load() Config {
	return Config{
		Port: getenvInt("PORT", 8080),

		StorageDriver:   strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDriverDynamoDB)),
		SessionsTable:   getenvDefault("NEGOTIATION_SESSIONS_TABLE", "negotiation_sessions"),
		RoundsTable:     getenvDefault("NEGOTIATION_ROUNDS_TABLE", "negotiation_rounds"),
		MandatesTable:   getenvDefault("PAYMENT_MANDATES_TABLE", "payment_mandates"),
		CatalogDriver:   strings.ToLower(getenvDefault("CATALOG_DRIVER", CatalogDriverStatic)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DefaultBaseCost: getenvDecimal("DEFAULT_BASE_COST", decimal.NewFromFloat(5.0)),

		DefaultMaxRounds: getenvInt("DEFAULT_MAX_ROUNDS", 3),
		MaxRoundsMode:    parseMaxRoundsMode(getenvDefault("MAX_ROUNDS_MODE", string(MaxRoundsLenient))),
		MarkupSeed:       int64(getenvInt("MARKUP_SEED", 0)),

		MandateValidity:     getenvDuration("MANDATE_VALIDITY", 24*time.Hour),
		MandateIssuer:       getenvDefault("MANDATE_ISSUER", "SupplyMind"),
		MandateAudience:     getenvDefault("MANDATE_AUDIENCE", "ap2-payment-gateway"),
		SigningKeyID:        getenvDefault("SIGNING_KEY_ID", "supplymind-key-001"),
		SigningKeyPEM:       os.Getenv("SIGNING_KEY_PEM"),
		SigningKeyFile:      os.Getenv("SIGNING_KEY_FILE"),
		AutoVerifyOnExecute: getenvBool("AUTO_VERIFY_ON_EXECUTE", true),
	}
}

// Addr is the listen address for gin.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func parseMaxRoundsMode(v string) MaxRoundsMode {
	switch MaxRoundsMode(strings.ToLower(strings.TrimSpace(v))) {
	case MaxRoundsStrict:
		return MaxRoundsStrict
	case MaxRoundsLenient:
		return MaxRoundsLenient
	}
	log.Printf("[config] unknown MAX_ROUNDS_MODE=%q; using lenient", v)
	return MaxRoundsLenient
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q; using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	log.Printf("[config] invalid %s; using %t", key, def)
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q; using %s", key, v, def)
		return def
	}
	return d
}

func getenvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil || !d.IsPositive() {
		log.Printf("[config] invalid %s=%q; using %s", key, v, def)
		return def
	}
	return d
}
