package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikkkkak/travel-listings/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "host=localhost user=travel dbname=travel")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LISTING_DELETE_POLICY", "")
	t.Setenv("ALLOW_HOST_BOOKING", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, config.DeletePolicyCascade, cfg.ListingDeletePolicy)
	assert.False(t, cfg.AllowHostBooking)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "travel.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LISTING_DELETE_POLICY", "restrict")
	t.Setenv("ALLOW_HOST_BOOKING", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "travel.db", cfg.DatabaseURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, config.DeletePolicyRestrict, cfg.ListingDeletePolicy)
	assert.True(t, cfg.AllowHostBooking)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "")
	t.Setenv("DB_DRIVER", "")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DB_CONNECTION_STRING", "travel.db")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = config.Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("LISTING_DELETE_POLICY", "nullify")
	_, err = config.Load()
	assert.Error(t, err)
}
