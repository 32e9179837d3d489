package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/visionpay/fieldops/internal/settings"
)

// Config holds the full application configuration.
type Config struct {
	Walker   WalkerConfig   `yaml:"walker" mapstructure:"walker"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Mock     MockConfig     `yaml:"mock" mapstructure:"mock"`
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Export   ExportConfig   `yaml:"export" mapstructure:"export"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// WalkerConfig configures the upstream walker API client.
type WalkerConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// Timeout returns the HTTP client timeout.
func (c WalkerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// MockConfig configures the local mock walker API. An empty DatabasePath
// keeps the mock fully in-memory.
type MockConfig struct {
	Port         int    `yaml:"port" mapstructure:"port"`
	DatabasePath string `yaml:"database_path" mapstructure:"database_path"`
}

// DefaultsConfig seeds the per-session dashboard settings.
type DefaultsConfig struct {
	RadiusKM         int    `yaml:"radius_km" mapstructure:"radius_km"`
	PaydayFrequency  string `yaml:"payday_frequency" mapstructure:"payday_frequency"`
	NotificationKeep int    `yaml:"notification_keep" mapstructure:"notification_keep"`
}

// ExportConfig configures report export output.
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FIELDOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("walker.base_url", "http://localhost:8000")
	v.SetDefault("walker.timeout_secs", 30)
	v.SetDefault("walker.rate_limit", 10.0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("mock.port", 8000)
	v.SetDefault("mock.database_path", "")
	v.SetDefault("defaults.radius_km", settings.DefaultRadiusKM)
	v.SetDefault("defaults.payday_frequency", string(settings.PaydayWeekly))
	v.SetDefault("defaults.notification_keep", 100)
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the fields a given mode depends on. Mode is the
// command group being run: "client" for dashboard commands that talk to
// the walker API, "serve" for the API server, "mock" for the mock walker.
func (c *Config) Validate(mode string) error {
	var problems []string

	check := func() {
		if c.Walker.BaseURL == "" {
			problems = append(problems, "walker.base_url is required")
		}
		if c.Walker.TimeoutSecs <= 0 {
			problems = append(problems, "walker.timeout_secs must be > 0")
		}
		if c.Walker.RateLimit <= 0 {
			problems = append(problems, "walker.rate_limit must be > 0")
		}
		if c.Defaults.RadiusKM < settings.MinRadiusKM || c.Defaults.RadiusKM > settings.MaxRadiusKM {
			problems = append(problems, "defaults.radius_km must be between 10 and 100")
		}
	}

	switch mode {
	case "client":
		check()
	case "serve":
		check()
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	case "mock":
		if c.Mock.Port <= 0 {
			problems = append(problems, "mock.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
