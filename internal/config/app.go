package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultTokenTTL   = 30 * time.Minute
	defaultServerPort = "8080"
)

// AppConfig is built once at startup and handed to every component that
// needs it.
type AppConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	ServerPort        string
	GinMode           string
	LogLevel          string
	AllowAdminSignup  bool
	InitialAdminEmail string
}

// LoadAppConfig reads the application settings from the environment.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:          defaultTokenTTL,
		ServerPort:        os.Getenv("SERVER_PORT"),
		GinMode:           os.Getenv("GIN_MODE"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		InitialAdminEmail: strings.TrimSpace(os.Getenv("INITIAL_ADMIN_EMAIL")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	if ttlStr := os.Getenv("TOKEN_TTL_MINUTES"); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil || minutes <= 0 {
			logrus.Warnf("Invalid TOKEN_TTL_MINUTES %q, defaulting to %v", ttlStr, defaultTokenTTL)
		} else {
			cfg.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}
	if cfg.GinMode == "" {
		cfg.GinMode = gin.DebugMode
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if v := os.Getenv("ALLOW_ADMIN_SIGNUP"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ALLOW_ADMIN_SIGNUP %q: %w", v, err)
		}
		cfg.AllowAdminSignup = allow
	}

	return cfg, nil
}

// SetupLogging configures the global logrus logger for the given gin mode.
func SetupLogging(cfg *AppConfig) {
	if cfg.GinMode == gin.ReleaseMode {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
