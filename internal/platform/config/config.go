package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration. Money-relevant knobs (signup bonus,
// fee rate, retry budget) live here rather than in process-global mutable
// state; the struct is built once at startup and read-only afterwards.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string

	// SignupBonusCredits seeds every lazily created account, recorded as a
	// single signup ledger entry.
	SignupBonusCredits int64

	// LedgerRetryLimit bounds the compare-and-set retry loops for balance and
	// boost writes before surfacing ErrContention.
	LedgerRetryLimit int

	// PlatformFeeRate is the default fraction withheld from each sale.
	PlatformFeeRate decimal.Decimal

	// RateLimit uses the ulule/limiter format, e.g. "300-M" for 300 req/min.
	RateLimit string

	CORSAllowOrigins []string
	PosthogAPIKey    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SIGNUP_BONUS_CREDITS", 1000)
	viper.SetDefault("LEDGER_RETRY_LIMIT", 5)
	viper.SetDefault("PLATFORM_FEE_RATE", "0.10")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.SignupBonusCredits = viper.GetInt64("SIGNUP_BONUS_CREDITS")
	if cfg.SignupBonusCredits < 0 {
		return nil, fmt.Errorf("SIGNUP_BONUS_CREDITS must not be negative, got %d", cfg.SignupBonusCredits)
	}

	cfg.LedgerRetryLimit = viper.GetInt("LEDGER_RETRY_LIMIT")
	if cfg.LedgerRetryLimit < 1 {
		log.Printf("Warning: LEDGER_RETRY_LIMIT %d is below 1. Defaulting to 5.\n", cfg.LedgerRetryLimit)
		cfg.LedgerRetryLimit = 5
	}

	feeRateStr := viper.GetString("PLATFORM_FEE_RATE")
	feeRate, err := decimal.NewFromString(feeRateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PLATFORM_FEE_RATE %q: %w", feeRateStr, err)
	}
	if feeRate.IsNegative() || feeRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("PLATFORM_FEE_RATE must be within [0,1], got %s", feeRate)
	}
	cfg.PlatformFeeRate = feeRate

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
