// Package config loads configuration from YAML files and environment
// variables using viper.
//
// LoadConfig resolves a config.yml and an optional .env file from
// conventional locations, binds environment variables, and unmarshals the
// result into the target struct via mapstructure tags:
//
//	var cfg keycloak.Config
//	if err := config.LoadConfig("myapp", &cfg); err != nil { ... }
package config
