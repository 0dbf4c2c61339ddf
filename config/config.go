package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Fulfillment specifics
	Fulfillment FulfillmentConfig
	Fares       FaresConfig

	// Webhook protection
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TrustedProxies  []string // peers allowed to set X-Forwarded-For; empty trusts none
	NgrokAPI        string   // local ngrok agent API, e.g. http://127.0.0.1:4040; empty disables
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type FulfillmentConfig struct {
	Debug  bool   // log inbound webhook headers and bodies
	Source string // echoed in WebhookResponse.source
}

type FaresConfig struct {
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

type WebhookConfig struct {
	DisableBasicAuth        bool
	BasicAuthUsername       string
	BasicAuthHashedPassword string // bcrypt
	AllowedIPs              []string
	RateLimitPerMin         int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

// load reads cfg from an already sourced viper instance.
func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = v.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = v.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = splitList(v.GetString("http_server.trusted_proxies"))
	cfg.HTTPServer.NgrokAPI = v.GetString("http_server.ngrok_api")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Fulfillment
	cfg.Fulfillment.Debug = v.GetBool("fulfillment.debug")
	cfg.Fulfillment.Source = v.GetString("fulfillment.source")

	// Fare API
	cfg.Fares.BaseURL = v.GetString("fares.base_url")
	cfg.Fares.Timeout = v.GetDuration("fares.timeout")
	cfg.Fares.BreakerMaxFailures = v.GetUint32("fares.breaker_max_failures")
	cfg.Fares.BreakerOpenTimeout = v.GetDuration("fares.breaker_open_timeout")

	// Webhook protection
	cfg.Webhook.DisableBasicAuth = v.GetBool("webhook.disable_basic_auth")
	cfg.Webhook.BasicAuthUsername = v.GetString("webhook.basic_auth_username")
	cfg.Webhook.BasicAuthHashedPassword = v.GetString("webhook.basic_auth_hashed_password")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")

	cfg.Webhook.AllowedIPs = splitList(v.GetString("webhook.allowed_ips"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma separated list, since viper does not read arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.read_timeout", "10s")
	v.SetDefault("http_server.write_timeout", "10s")
	v.SetDefault("http_server.shutdown_timeout", "15s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("fulfillment.debug", false)
	v.SetDefault("fulfillment.source", "flight-fulfillment")

	// Dialogflow gives a webhook 5s; keep the fare call below that.
	v.SetDefault("fares.base_url", "https://digital-flights.herokuapp.com")
	v.SetDefault("fares.timeout", "4s")
	v.SetDefault("fares.breaker_max_failures", 5)
	v.SetDefault("fares.breaker_open_timeout", "30s")

	v.SetDefault("webhook.disable_basic_auth", false)
	v.SetDefault("webhook.rate_limit_per_min", 600)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be in 1..65535, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Fares.Timeout <= 0 {
		return fmt.Errorf("fares.timeout must be positive")
	}
	if !cfg.Webhook.DisableBasicAuth {
		if cfg.Webhook.BasicAuthUsername == "" || cfg.Webhook.BasicAuthHashedPassword == "" {
			return fmt.Errorf("webhook basic auth requires basic_auth_username and basic_auth_hashed_password (or set webhook.disable_basic_auth)")
		}
	}
	if cfg.Webhook.RateLimitPerMin < 0 {
		return fmt.Errorf("webhook.rate_limit_per_min must not be negative")
	}
	return nil
}
