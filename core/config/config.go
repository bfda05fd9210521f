package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache       sync.Map // reflect.Type -> parsed struct value
	loadEnvOnce sync.Once
)

// Load parses environment variables into cfg. The .env file, when present,
// is loaded into the process environment once per application lifetime.
// Each configuration type is parsed only once; subsequent calls for the same
// type return the cached value.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// Missing .env is fine: real deployments use the environment.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load but panics on failure. Useful during startup where a
// missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
