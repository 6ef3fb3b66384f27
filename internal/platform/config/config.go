package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	JWTIssuer      string
	MigrationsPath string

	CORSAllowedOrigins []string
	RateLimit          limiter.Rate

	// Allocation engine limits
	MaxCustomMainAccounts       int
	MaxCustomDirectCostAccounts int
	DirectCostWarningPercent    decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "profit-first-app")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("MAX_CUSTOM_MAIN_ACCOUNTS", 10)
	viper.SetDefault("MAX_CUSTOM_DIRECT_COST_ACCOUNTS", 15)
	viper.SetDefault("DIRECT_COST_WARNING_PERCENT", "80")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:                 viper.GetString("PGSQL_URL"),
		Port:                        viper.GetString("PORT"),
		IsProduction:                viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:               viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:                   viper.GetString("JWT_SECRET"),
		JWTIssuer:                   viper.GetString("JWT_ISSUER"),
		MigrationsPath:              viper.GetString("MIGRATIONS_PATH"),
		MaxCustomMainAccounts:       viper.GetInt("MAX_CUSTOM_MAIN_ACCOUNTS"),
		MaxCustomDirectCostAccounts: viper.GetInt("MAX_CUSTOM_DIRECT_COST_ACCOUNTS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	rateStr := viper.GetString("RATE_LIMIT")
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to 100-M.\n", rateStr)
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	cfg.RateLimit = rate

	if cfg.MaxCustomMainAccounts < 1 {
		log.Printf("Warning: MAX_CUSTOM_MAIN_ACCOUNTS must be positive. Defaulting to 10.\n")
		cfg.MaxCustomMainAccounts = 10
	}
	if cfg.MaxCustomDirectCostAccounts < 1 {
		log.Printf("Warning: MAX_CUSTOM_DIRECT_COST_ACCOUNTS must be positive. Defaulting to 15.\n")
		cfg.MaxCustomDirectCostAccounts = 15
	}

	warnStr := viper.GetString("DIRECT_COST_WARNING_PERCENT")
	warn, err := decimal.NewFromString(warnStr)
	if err != nil || warn.IsNegative() || warn.GreaterThan(decimal.NewFromInt(100)) {
		log.Printf("Warning: Invalid value for DIRECT_COST_WARNING_PERCENT ('%s'). Defaulting to 80.\n", warnStr)
		warn = decimal.NewFromInt(80)
	}
	cfg.DirectCostWarningPercent = warn

	return cfg, nil
}
