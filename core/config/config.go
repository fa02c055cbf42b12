package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load is given a nil destination.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParse is returned when environment variables cannot be parsed
	// into the destination struct.
	ErrParse = errors.New("config: failed to parse environment")
)

var (
	mu     sync.RWMutex
	loaded = make(map[string]any)
	dotenv sync.Once
)

// Load parses environment variables into cfg based on `env` struct tags.
// Each distinct configuration type is parsed once per process; subsequent
// calls for the same type return the cached value. A .env file in the
// working directory is loaded on first use if present.
//
//	type ServerConfig struct {
//		BodyLimit int64 `env:"BODY_LIMIT_MAX_SIZE" envDefault:"2097152"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	mu.RLock()
	if v, ok := loaded[key]; ok {
		*cfg = v.(T)
		mu.RUnlock()
		return nil
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have parsed it while we waited for the lock.
	if v, ok := loaded[key]; ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParse, err)
	}

	loaded[key] = *cfg
	return nil
}

// MustLoad is Load but panics on failure. Intended for process startup,
// where a missing required variable should stop the program.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: load failed: %v", err))
	}
}

// typeKey returns a stable string identifier for T.
func typeKey[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
