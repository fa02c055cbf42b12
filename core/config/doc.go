// Package config provides type-safe environment variable loading with
// per-type caching. It parses variables into tagged structs using
// caarlos0/env and loads a .env file on first use when one exists.
//
//	type BodyLimitConfig struct {
//		MaxSize  int64 `env:"BODY_LIMIT_MAX_SIZE" envDefault:"2097152"`
//		Disabled bool  `env:"BODY_LIMIT_DISABLED" envDefault:"false"`
//	}
//
//	var cfg BodyLimitConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process lifetime; later
// loads of the same type return the cached value.
package config
