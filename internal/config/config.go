package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	OIDC struct {
		Issuer   string
		ClientID string
		// Claim names the ID-token claim carrying the caller identity.
		Claim string
	}
	Auth struct {
		// Mode selects how bearer credentials are resolved: "token" for
		// DB-backed API tokens, "oidc" for verified JWTs, "both" to try
		// the token store first and fall back to OIDC.
		Mode string
	}
}

// Load reads config from environment (BOOKMARKD_ prefix) and optional bookmarkd.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKMARKD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("bookmarkd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("auth.mode", "token")
	v.SetDefault("oidc.claim", "preferred_username")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.OIDC.Issuer = v.GetString("oidc.issuer")
	cfg.OIDC.ClientID = v.GetString("oidc.client_id")
	cfg.OIDC.Claim = v.GetString("oidc.claim")
	cfg.Auth.Mode = v.GetString("auth.mode")

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("BOOKMARKD_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("BOOKMARKD_DB_DSN is required")
	}

	switch cfg.Auth.Mode {
	case "token":
	case "oidc", "both":
		if cfg.OIDC.Issuer == "" {
			return nil, fmt.Errorf("BOOKMARKD_OIDC_ISSUER is required when BOOKMARKD_AUTH_MODE=%s", cfg.Auth.Mode)
		}
		if cfg.OIDC.ClientID == "" {
			return nil, fmt.Errorf("BOOKMARKD_OIDC_CLIENT_ID is required when BOOKMARKD_AUTH_MODE=%s", cfg.Auth.Mode)
		}
	default:
		return nil, fmt.Errorf("unsupported BOOKMARKD_AUTH_MODE %q: must be token, oidc, or both", cfg.Auth.Mode)
	}

	return cfg, nil
}
