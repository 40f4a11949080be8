package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and passed by injection; nothing reads
// it as ambient global state.
type Config struct {
	DatabaseURL string

	HTTPAddress string

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	Issuer            string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration

	CookiePath     string
	CookieDomain   string
	CookieSecure   bool
	CookieSameSite string

	AllowedOrigins   []string
	AllowCredentials bool

	AdminID       int64
	AdminUsername string
	AdminPassword string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	for _, key := range []string{
		"DATABASE_URL",
		"HTTP_ADDRESS",
		"JWT_PRIVATE_KEY_PATH",
		"JWT_PUBLIC_KEY_PATH",
		"JWT_ISSUER",
		"ACCESS_TOKEN_TTL",
		"REFRESH_TOKEN_TTL",
		"COOKIE_PATH",
		"COOKIE_DOMAIN",
		"COOKIE_SECURE",
		"COOKIE_SAMESITE",
		"ALLOWED_ORIGINS",
		"ALLOW_CREDENTIALS",
		"ADMIN_ID",
		"ADMIN_USERNAME",
		"ADMIN_PASSWORD",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("HTTP_ADDRESS", ":8080")
	v.SetDefault("ACCESS_TOKEN_TTL", "60m")
	v.SetDefault("REFRESH_TOKEN_TTL", "960h") // 40 суток
	v.SetDefault("COOKIE_PATH", "/")
	v.SetDefault("COOKIE_SAMESITE", "lax")
	v.SetDefault("ADMIN_ID", -1)
	v.SetDefault("ADMIN_USERNAME", "TODOadmin")

	cfg := &Config{
		DatabaseURL:       v.GetString("DATABASE_URL"),
		HTTPAddress:       v.GetString("HTTP_ADDRESS"),
		JWTPrivateKeyPath: v.GetString("JWT_PRIVATE_KEY_PATH"),
		JWTPublicKeyPath:  v.GetString("JWT_PUBLIC_KEY_PATH"),
		Issuer:            v.GetString("JWT_ISSUER"),
		AccessTokenTTL:    v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:   v.GetDuration("REFRESH_TOKEN_TTL"),
		CookiePath:        v.GetString("COOKIE_PATH"),
		CookieDomain:      v.GetString("COOKIE_DOMAIN"),
		CookieSecure:      v.GetBool("COOKIE_SECURE"),
		CookieSameSite:    v.GetString("COOKIE_SAMESITE"),
		AllowedOrigins:    v.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:  v.GetBool("ALLOW_CREDENTIALS"),
		AdminID:           v.GetInt64("ADMIN_ID"),
		AdminUsername:     v.GetString("ADMIN_USERNAME"),
		AdminPassword:     v.GetString("ADMIN_PASSWORD"),
	}

	for name, val := range map[string]string{
		"DATABASE_URL":         cfg.DatabaseURL,
		"JWT_PRIVATE_KEY_PATH": cfg.JWTPrivateKeyPath,
		"JWT_PUBLIC_KEY_PATH":  cfg.JWTPublicKeyPath,
		"JWT_ISSUER":           cfg.Issuer,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s is not set", name)
		}
	}

	switch cfg.CookieSameSite {
	case "lax", "strict", "none":
	default:
		return nil, fmt.Errorf("COOKIE_SAMESITE must be lax, strict or none, got %q", cfg.CookieSameSite)
	}

	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}

	return cfg, nil
}
