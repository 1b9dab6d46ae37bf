// Package config loads the application configuration.
//
// Values come from environment variables (optionally via a .env file) with
// defaults declared as struct tags. Nested keys map to underscored variables,
// e.g. database.path -> DATABASE_PATH.
package config
