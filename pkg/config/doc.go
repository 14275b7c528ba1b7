// Package config loads RoboHub server settings from an optional YAML
// file and the environment, tracking the source of each attribute.
package config
