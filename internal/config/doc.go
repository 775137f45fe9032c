// Package config loads environment-driven configuration structs.
//
// Fields are mapped with caarlos0/env tags. A .env file in the working
// directory is loaded once, before the first call to Load; variables that
// are already set take precedence over it.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
