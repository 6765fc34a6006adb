package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "COMMUNITYEXPRESS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	API          APIConfig
	DB           DBConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"COMMUNITYEXPRESS_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"COMMUNITYEXPRESS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"COMMUNITYEXPRESS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig describes the remote CommunityExpress API. A single timeout
// applies to every call site.
type APIConfig struct {
	BaseURL string        `envconfig:"COMMUNITYEXPRESS_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"COMMUNITYEXPRESS_API_TIMEOUT" default:"30s"`
}

func (a *APIConfig) validate() error {
	base := strings.TrimSpace(a.BaseURL)
	if base == "" {
		return fmt.Errorf("api base url is required")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return fmt.Errorf("api base url must include scheme, got %q", base)
	}
	a.BaseURL = strings.TrimRight(base, "/")
	if a.Timeout <= 0 {
		a.Timeout = 30 * time.Second
	}
	return nil
}

// DBConfig points at the local sqlite file backing the session store and
// the offline order cache.
type DBConfig struct {
	Path string `envconfig:"COMMUNITYEXPRESS_DB_PATH" default:"communityexpress.db"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"COMMUNITYEXPRESS_AUTO_MIGRATE" default:"true"`
}
