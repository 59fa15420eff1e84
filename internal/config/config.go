package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL   string
	SeedEmployees bool // Insert the sample directory when the employees table is empty

	// Session storage. Empty keeps sessions in process memory.
	RedisURL string

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json or console

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// OIDC single sign-on, optional alongside local accounts
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Assistant
	KnowledgeFile        string // YAML knowledge base; built-in table when missing
	AssistantMatchPolicy string // "first" or "longest"

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "iColleague"
	SiteTagline string // env: SITE_TAGLINE, default: "Employee Assistant Platform"
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

var defaults = map[string]any{
	"ENV":                    "development",
	"SERVER_ADDR":            ":5000",
	"BASE_URL":               "http://localhost:5000",
	"DATABASE_URL":           "postgres://localhost:5432/icolleague?sslmode=disable",
	"SEED_EMPLOYEES":         true,
	"REDIS_URL":              "",
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "",
	"TLS_ENABLED":            false,
	"OIDC_REDIRECT_URL":      "http://localhost:5000/auth/callback",
	"SESSION_SECRET":         "change-me-in-production-min-32-chars",
	"KNOWLEDGE_FILE":         "knowledge.yaml",
	"ASSISTANT_MATCH_POLICY": "first",
	"SITE_TITLE":             "iColleague",
	"SITE_TAGLINE":           "Employee Assistant Platform",
	"SITE_FOOTER":            "iColleague - Employee Assistant Platform",
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; real
// environment variables win over it.
func Load() *Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Env:                  v.GetString("ENV"),
		ServerAddr:           v.GetString("SERVER_ADDR"),
		BaseURL:              v.GetString("BASE_URL"),
		DatabaseURL:          v.GetString("DATABASE_URL"),
		SeedEmployees:        v.GetBool("SEED_EMPLOYEES"),
		RedisURL:             v.GetString("REDIS_URL"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		TLSEnabled:           v.GetBool("TLS_ENABLED"),
		TLSCertFile:          v.GetString("TLS_CERT_FILE"),
		TLSKeyFile:           v.GetString("TLS_KEY_FILE"),
		TLSCAFile:            v.GetString("TLS_CA_FILE"),
		OIDCIssuer:           v.GetString("OIDC_ISSUER"),
		OIDCClientID:         v.GetString("OIDC_CLIENT_ID"),
		OIDCClientSecret:     v.GetString("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:      v.GetString("OIDC_REDIRECT_URL"),
		SessionSecret:        v.GetString("SESSION_SECRET"),
		CORSOrigins:          v.GetString("CORS_ORIGINS"),
		KnowledgeFile:        v.GetString("KNOWLEDGE_FILE"),
		AssistantMatchPolicy: v.GetString("ASSISTANT_MATCH_POLICY"),
		SiteTitle:            v.GetString("SITE_TITLE"),
		SiteTagline:          v.GetString("SITE_TAGLINE"),
		SiteFooter:           v.GetString("SITE_FOOTER"),
		SiteLogoURL:          v.GetString("SITE_LOGO_URL"),
	}

	if cfg.LogFormat == "" {
		if cfg.IsDev() {
			cfg.LogFormat = "console"
		} else {
			cfg.LogFormat = "json"
		}
	}

	return cfg
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsSSOEnabled returns true if an OIDC issuer is configured.
func (c *Config) IsSSOEnabled() bool {
	return c.OIDCIssuer != ""
}
