// Package config loads the planner's YAML configuration, validates it, and
// hot-reloads it when the file changes.
package config
