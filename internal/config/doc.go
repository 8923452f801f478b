// Package config loads runtime configuration for the packing list service
// from defaults, environment variables (optionally seeded from a .env file),
// a YAML file and CLI flags, with later sources overriding earlier ones.
package config
