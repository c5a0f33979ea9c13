// Package config defines the application configuration structure and loading
// mechanism. Configuration is loaded once at startup from defaults, an
// optional YAML file, and USERGATE_-prefixed environment variables, then
// validated and passed to components by parameter.
package config
