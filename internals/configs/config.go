package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
)

// ErrSecretUnavailable is returned when the JWT signing secret cannot be
// resolved. Verification must fail hard in that case, never fall open.
var ErrSecretUnavailable = errors.New("jwt secret unavailable")

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("APP_ENV") == "production" {
		log.Println("[INFO] Running in production, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("[WARNING] No .env file found, using system ENV")
	} else {
		log.Println("[INFO] .env file loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// JWT SECRETS
// =======================
// Secrets are resolved exactly once per process and are read-only
// afterwards, so concurrent readers need no locking.
var (
	jwtOnce          sync.Once
	jwtSecret        string
	jwtRefreshSecret string
	jwtErr           error
)

func loadSecrets() {
	jwtSecret = os.Getenv("JWT_SECRET")
	jwtRefreshSecret = os.Getenv("JWT_REFRESH_SECRET")
	if jwtSecret == "" {
		jwtErr = ErrSecretUnavailable
		log.Println("[ERROR] JWT_SECRET is not set")
		return
	}
	if jwtRefreshSecret == "" {
		// refresh tokens fall back to the access secret
		jwtRefreshSecret = jwtSecret
	}
}

// JWTSecret returns the access-token signing secret.
func JWTSecret() (string, error) {
	jwtOnce.Do(loadSecrets)
	if jwtErr != nil {
		return "", jwtErr
	}
	return jwtSecret, nil
}

// JWTRefreshSecret returns the refresh-token signing secret.
func JWTRefreshSecret() (string, error) {
	jwtOnce.Do(loadSecrets)
	if jwtErr != nil {
		return "", jwtErr
	}
	return jwtRefreshSecret, nil
}

// ResetSecretsForTest clears the once guard. Test helper only.
func ResetSecretsForTest() {
	jwtOnce = sync.Once{}
	jwtSecret, jwtRefreshSecret, jwtErr = "", "", nil
}

// =======================
// GORM LOGGER
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARNING] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | rows=%d | %s", sql, err, rows, elapsed)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[WARNING] SLOW QUERY %s | rows=%d | %s", sql, rows, elapsed)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[INFO] %s | rows=%d | %s", sql, rows, elapsed)
	}
}
