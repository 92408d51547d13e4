// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type
// is parsed once and cached for the lifetime of the process:
//
//	type ServiceConfig struct {
//		SchemaDir       string `env:"SCHEMA_DIR" envDefault:"./schemas"`
//		DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnv reads explicit .env files; without arguments Load picks up the
// default .env in the working directory if one exists. ResetCache drops the
// cached values, which tests use to reparse after changing the environment.
package config
