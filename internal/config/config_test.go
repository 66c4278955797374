package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing MONGO_URI", func(t *testing.T) {
		t.Setenv("MONGO_URI", "")
		t.Setenv("JWT_SECRET", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MONGO_URI")
	})

	t.Run("missing JWT_SECRET", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "")
		t.Setenv("MONGO_DB", "")
		t.Setenv("JWT_EXPIRY", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "taller", cfg.MongoDB)
		assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
		assert.Equal(t, "tcp://localhost:1883", cfg.MQTTBroker)
		assert.Equal(t, "workshop/reminders", cfg.MQTTTopic)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://db:27017")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "9090")
		t.Setenv("MONGO_DB", "taller_test")
		t.Setenv("JWT_EXPIRY", "2h")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
		assert.Equal(t, "taller_test", cfg.MongoDB)
		assert.Equal(t, 2*time.Hour, cfg.TokenExpiry)
	})
}

func TestGetDuration(t *testing.T) {
	t.Run("duration string", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "90s")
		assert.Equal(t, 90*time.Second, getDuration("TEST_DURATION", time.Minute))
	})

	t.Run("bare integer is seconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "30")
		assert.Equal(t, 30*time.Second, getDuration("TEST_DURATION", time.Minute))
	})

	t.Run("unparseable falls back", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "soon")
		assert.Equal(t, time.Minute, getDuration("TEST_DURATION", time.Minute))
	})

	t.Run("unset falls back", func(t *testing.T) {
		assert.Equal(t, time.Minute, getDuration("TEST_DURATION_UNSET", time.Minute))
	})
}
