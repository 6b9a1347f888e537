// Package config loads the explicit runtime configuration. Core packages take
// a Config (or the relevant fields) through constructors; there is no ambient
// global state.
package config

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Listing deletion policies.
const (
	DeletePolicyCascade  = "cascade"
	DeletePolicyRestrict = "restrict"
)

type Config struct {
	// DatabaseDriver selects the gorm driver: postgres or sqlite.
	DatabaseDriver string `validate:"oneof=postgres sqlite"`
	// DatabaseURL is the postgres DSN or the sqlite file path.
	DatabaseURL string `validate:"required"`
	// RedisAddr enables the average-rating cache when non-empty.
	RedisAddr string
	// ListingDeletePolicy controls listings with dependent bookings/reviews:
	// cascade deletes them with the listing, restrict rejects the delete.
	ListingDeletePolicy string `validate:"oneof=cascade restrict"`
	// AllowHostBooking permits guests to book their own listings.
	AllowHostBooking bool
}

// Load reads configuration from the environment, loading .env first when
// present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := Config{
		DatabaseDriver:      envOr("DB_DRIVER", "postgres"),
		DatabaseURL:         os.Getenv("DB_CONNECTION_STRING"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		ListingDeletePolicy: envOr("LISTING_DELETE_POLICY", DeletePolicyCascade),
		AllowHostBooking:    os.Getenv("ALLOW_HOST_BOOKING") == "true",
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
