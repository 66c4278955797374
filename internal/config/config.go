package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application runtime configuration.
type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	JWTSecret        string
	TokenExpiry      time.Duration
	MQTTBroker       string
	MQTTTopic        string
	ReminderWindow   time.Duration
	ReminderInterval time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	ShutdownTimeout  time.Duration
}

// Load reads environment variables and .env (if present). MONGO_URI and
// JWT_SECRET have no fallback: startup fails without them.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "taller"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenExpiry:      getDuration("JWT_EXPIRY", 24*time.Hour),
		MQTTBroker:       getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTTopic:        getEnv("MQTT_TOPIC", "workshop/reminders"),
		ReminderWindow:   getDuration("REMINDER_WINDOW", 24*time.Hour),
		ReminderInterval: getDuration("REMINDER_INTERVAL", time.Minute),
		ReadTimeout:      getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:     getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:      getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:  getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.MongoURI == "" {
		return cfg, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		// Support seconds as a bare integer.
		if secs, convErr := strconv.Atoi(val); convErr == nil {
			return time.Duration(secs) * time.Second
		}
		return fallback
	}
	return d
}
