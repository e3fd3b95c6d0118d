// Package config loads application configuration from environment variables
// into typed structs using struct tags, with optional .env file support for
// local development.
//
// Configuration structs declare their environment bindings via `env` tags:
//
//	type FitbitConfig struct {
//		ClientID     string `env:"FITBIT_CLIENT_ID"`
//		ClientSecret string `env:"FITBIT_CLIENT_SECRET"`
//	}
//
// Load fills the struct; MustLoad panics on failure and is meant for startup
// paths where a broken configuration should prevent the process from running.
package config
