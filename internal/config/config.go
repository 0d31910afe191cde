package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort      = 5000
	defaultStaticDir = "static"
)

// Load reads the YAML config at path (missing file is not an error) and then
// applies environment overrides. Environment always wins over the file.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:      defaultPort,
		Env:       "development",
		StaticDir: defaultStaticDir,
	}

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = defaultStaticDir
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	setEnvString(&cfg.DSN, "DSN", "DATABASE_URL")
	setEnvString(&cfg.Env, "APP_ENV", "GO_ENV")
	setEnvString(&cfg.StaticDir, "STATIC_DIR")
	setEnvString(&cfg.PaymentKey, "PAYMENT_KEY")

	setEnvString(&cfg.Media.Bucket, "MEDIA_BUCKET")
	setEnvString(&cfg.Media.Region, "MEDIA_REGION")
	setEnvString(&cfg.Media.AccessKeyID, "MEDIA_ACCESS_KEY_ID")
	setEnvString(&cfg.Media.SecretAccessKey, "MEDIA_SECRET_ACCESS_KEY")
	setEnvString(&cfg.Media.Endpoint, "MEDIA_ENDPOINT")
	setEnvString(&cfg.Media.CustomDomain, "MEDIA_CUSTOM_DOMAIN")

	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}
}

// setEnvString assigns the first non-empty environment variable among keys.
func setEnvString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
			return
		}
	}
}
