package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	Host           string        `mapstructure:"lnd_host"`
	MacaroonPath   string        `mapstructure:"lnd_macaroon_path"`
	TLSCertPath    string        `mapstructure:"lnd_tls_cert_path"`
	TimeoutSeconds int64         `mapstructure:"lnd_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`

	SocksProxy    string `mapstructure:"lnd_socks_proxy"`
	SocksUser     string `mapstructure:"lnd_socks_user"`
	SocksPassword string `mapstructure:"lnd_socks_password"`
}

// Load reads configuration from configs/.env and the environment.
func Load() (*Config, error) {
	return LoadFrom("configs/.env")
}

// LoadFrom is Load with an explicit dotenv file. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	v := viper.New()

	v.SetDefault("app_name", "lnd-rest")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("lnd_host", "localhost:8080")
	v.SetDefault("lnd_macaroon_path", "")
	v.SetDefault("lnd_tls_cert_path", "")
	v.SetDefault("lnd_timeout_seconds", 30)
	v.SetDefault("lnd_socks_proxy", "")
	v.SetDefault("lnd_socks_user", "")
	v.SetDefault("lnd_socks_password", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid lnd_timeout_seconds (must not be negative)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return &cfg, nil
}

// Validate reports the settings a client cannot be built without.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Host) == "" {
		missing = append(missing, "LND_HOST")
	}
	if strings.TrimSpace(c.MacaroonPath) == "" {
		missing = append(missing, "LND_MACAROON_PATH")
	}
	if strings.TrimSpace(c.TLSCertPath) == "" {
		missing = append(missing, "LND_TLS_CERT_PATH")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}
