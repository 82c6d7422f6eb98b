// Package config loads, validates and hot-reloads the textops.yaml configuration.
package config
