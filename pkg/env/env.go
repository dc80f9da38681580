// Package env holds the config blocks the services compose and parse from
// the process environment.
package env

import (
	"github.com/caarlos0/env/v10"
)

// Service holds the settings every binary shares.
type Service struct {
	Name     string `env:"SERVICE_NAME" envDefault:"store"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Catalog points the store service at its seed catalog file. An empty path
// selects the built-in default catalog.
type Catalog struct {
	Path string `env:"STORE_CATALOG_PATH"`
}

// ParseCfg fills cfg from the process environment.
func ParseCfg(cfg interface{}) error {
	return env.Parse(cfg)
}
