package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration of the development remote authority.
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration

	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	Version string
}

// GetServerConfig builds and validates the development server view of the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		Version:        cfg.App.Version,
	}
}
