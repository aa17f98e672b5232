package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	DatabaseURL   string   `mapstructure:"DATABASE_URL"`
	DBMaxConns    int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns    int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
	JWTSecret     string   `mapstructure:"JWT_SECRET"`
	TokenTTLHours int      `mapstructure:"TOKEN_TTL_HOURS"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// Booking window knobs. The defaults mirror the front desk policy:
	// 30-minute slots, 09:00-17:00, closed on Sundays, bookable up to
	// 30 days ahead.
	BookingHorizonDays   int `mapstructure:"BOOKING_HORIZON_DAYS"`
	BookingOpenHour      int `mapstructure:"BOOKING_OPEN_HOUR"`
	BookingCloseHour     int `mapstructure:"BOOKING_CLOSE_HOUR"`
	BookingSlotMinutes   int `mapstructure:"BOOKING_SLOT_MINUTES"`
	BookingClosedWeekday int `mapstructure:"BOOKING_CLOSED_WEEKDAY"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("BOOKING_HORIZON_DAYS", 30)
	v.SetDefault("BOOKING_OPEN_HOUR", 9)
	v.SetDefault("BOOKING_CLOSE_HOUR", 17)
	v.SetDefault("BOOKING_SLOT_MINUTES", 30)
	v.SetDefault("BOOKING_CLOSED_WEEKDAY", int(time.Sunday))

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("TOKEN_TTL_HOURS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("BOOKING_HORIZON_DAYS")
	v.BindEnv("BOOKING_OPEN_HOUR")
	v.BindEnv("BOOKING_CLOSE_HOUR")
	v.BindEnv("BOOKING_SLOT_MINUTES")
	v.BindEnv("BOOKING_CLOSED_WEEKDAY")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TokenTTL returns the session token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// ClosedWeekday returns the weekday on which no appointments are offered.
func (c *Config) ClosedWeekday() time.Weekday {
	return time.Weekday(c.BookingClosedWeekday)
}

// Validate checks that the configuration is safe to run. Outside
// development a JWT_SECRET must be set so that session tokens cannot be
// forged, and the booking window must describe a non-empty slot grid.
func (c *Config) Validate() error {
	if !c.IsDev() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	if c.BookingOpenHour < 0 || c.BookingCloseHour > 24 || c.BookingOpenHour >= c.BookingCloseHour {
		return fmt.Errorf("booking hours %d-%d do not describe a valid window", c.BookingOpenHour, c.BookingCloseHour)
	}
	if c.BookingSlotMinutes <= 0 || c.BookingSlotMinutes > 60 {
		return fmt.Errorf("BOOKING_SLOT_MINUTES must be within 1..60, got %d", c.BookingSlotMinutes)
	}
	if c.BookingHorizonDays <= 0 {
		return fmt.Errorf("BOOKING_HORIZON_DAYS must be positive, got %d", c.BookingHorizonDays)
	}
	if c.BookingClosedWeekday < 0 || c.BookingClosedWeekday > 6 {
		return fmt.Errorf("BOOKING_CLOSED_WEEKDAY must be 0 (Sunday) through 6 (Saturday), got %d", c.BookingClosedWeekday)
	}
	return nil
}
