package config

import (
	"path"
	"time"

	"github.com/eskrenkovic/sales-catalog-go/internal/env"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	PortEnv        = "PORT"
	DatabaseUrlEnv = "DATABASE_URL"
	RootPathEnv    = "ROOT_PATH"
	LogLevelEnv    = "LOG_LEVEL"

	DBMaxOpenConnsEnv    = "DB_MAX_OPEN_CONNS"
	DBMaxIdleConnsEnv    = "DB_MAX_IDLE_CONNS"
	DBConnMaxLifetimeEnv = "DB_CONN_MAX_LIFETIME"

	ShutdownTimeoutEnv = "SHUTDOWN_TIMEOUT"
)

type DatabaseConfiguration struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Config struct {
	Logger *zap.Logger

	Port            int
	MigrationsPath  string
	ShutdownTimeout time.Duration

	Database DatabaseConfiguration
}

func Load() (Config, error) {
	logger, err := NewLogger(env.GetStringOrDefault(LogLevelEnv, "info"))
	if err != nil {
		return Config{}, err
	}

	port, err := env.GetIntOrDefault(PortEnv, 8080)
	if err != nil {
		return Config{}, err
	}

	dbURL, err := env.GetString(DatabaseUrlEnv)
	if err != nil {
		return Config{}, err
	}

	maxOpenConns, err := env.GetIntOrDefault(DBMaxOpenConnsEnv, 10)
	if err != nil {
		return Config{}, err
	}

	maxIdleConns, err := env.GetIntOrDefault(DBMaxIdleConnsEnv, 5)
	if err != nil {
		return Config{}, err
	}

	connMaxLifetime, err := env.GetDurationOrDefault(DBConnMaxLifetimeEnv, 30*time.Minute)
	if err != nil {
		return Config{}, err
	}

	shutdownTimeout, err := env.GetDurationOrDefault(ShutdownTimeoutEnv, 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	rootPath := env.GetStringOrDefault(RootPathEnv, ".")
	migrationsPath := path.Join(rootPath, "db", "migrations")

	return Config{
		Logger:          logger,
		Port:            port,
		MigrationsPath:  migrationsPath,
		ShutdownTimeout: shutdownTimeout,
		Database: DatabaseConfiguration{
			URL:             dbURL,
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
	}, nil
}

// NewLogger builds a JSON production logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(lvl)

	return loggerConfig.Build()
}
