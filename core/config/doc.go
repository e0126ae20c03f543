// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with `env` tags understood by
// caarlos0/env. A .env file in the working directory, if present, is applied
// once before the first parse through joho/godotenv.
//
//	type RegistryConfig struct {
//		MaxListeners     int  `env:"LISTENER_MAX_LISTENERS" envDefault:"0"`
//		IgnoreUnresolved bool `env:"LISTENER_IGNORE_UNRESOLVED" envDefault:"false"`
//	}
//
//	var cfg RegistryConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	// Startup code may prefer to panic.
//	config.MustLoad(&cfg)
//
// # Caching
//
// Each type is parsed once per process. Later calls for the same type copy the
// cached value, even if the environment changed in between; distinct types are
// cached independently.
package config
