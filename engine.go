// Package simplemongo bootstraps a host program around the typed MongoDB store in
// ds/mongo: it owns the process logger and can open a store straight from the
// environment.
package simplemongo

import (
	"context"
	"fmt"

	"github.com/logistics-id/simplemongo/common"
	"github.com/logistics-id/simplemongo/ds/mongo"
	"github.com/logistics-id/simplemongo/log"
	"go.uber.org/zap"
)

type Config struct {
	Name    string
	Version string
	Host    string
	IsDev   bool
}

var (
	Service *Config
	Logger  = zap.NewNop()
)

// Start records the service configuration and builds the process logger.
func Start(cfg *Config) *Config {
	Service = cfg
	Logger = NewLogger(cfg.Name)
	Logger.Info(fmt.Sprintf("Starting Service: %s", Service.Name), zap.String("version", cfg.Version))

	return Service
}

// NewLogger creates a named logger using the global config.
func NewLogger(name string) *zap.Logger {
	if Service == nil {
		return log.NewLogger(name, false)
	}
	return log.NewLogger(name, Service.IsDev).With(zap.String("host", Service.Host))
}

// Open loads store options from environment variables with the given prefix
// (mongo.EnvPrefix when empty) and connects a store for T using the process logger.
func Open[T any, P common.Record[T]](ctx context.Context, prefix string) (*mongo.Store[T, P], error) {
	opts, err := mongo.LoadOptions(prefix)
	if err != nil {
		Logger.Error("MGO/CONF INVALID", zap.Error(err))
		return nil, err
	}
	return mongo.Connect[T, P](ctx, opts, Logger)
}
