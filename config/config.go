package config

import (
	"fmt"
	"os"
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

	// Integrations
	ClickUp  ClickUpConfig
	Telegram TelegramConfig

	ReplayGuard ReplayGuardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClickUpConfig struct {
	APIURL      string
	Token       string
	AuthMode    string // "token" (personal token) or "oauth"
	DefaultTeam string // workspace every lookup starts from
	Timeout     time.Duration
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	NgrokAPIURL   string // local ngrok API probed when WebhookURL is empty
}

// ReplayGuardConfig bounds the memory of recently processed Telegram update ids.
type ReplayGuardConfig struct {
	Size int
	TTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// ClickUp
	cfg.ClickUp.APIURL = viper.GetString("clickup.api_url")
	cfg.ClickUp.Token = expandEnvVar(viper.GetString("clickup.token"))
	cfg.ClickUp.AuthMode = viper.GetString("clickup.auth_mode")
	cfg.ClickUp.DefaultTeam = viper.GetString("clickup.default_team")
	cfg.ClickUp.Timeout = viper.GetDuration("clickup.timeout")
	if token := viper.GetString("clickup_token"); token != "" {
		cfg.ClickUp.Token = token
	}

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = expandEnvVar(viper.GetString("telegram.webhook_secret"))
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.ReplayGuard.Size = viper.GetInt("replay_guard.size")
	cfg.ReplayGuard.TTL = viper.GetDuration("replay_guard.ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("clickup.api_url", "https://api.clickup.com/api/v2")
	viper.SetDefault("clickup.auth_mode", "token")
	viper.SetDefault("clickup.default_team", "Simbio IT")
	viper.SetDefault("clickup.timeout", "15s")

	viper.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")

	viper.SetDefault("replay_guard.size", 1000)
	viper.SetDefault("replay_guard.ttl", "10m")
}

// expandEnvVar expands values written as ${VAR_NAME} in config.yaml.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	return os.Getenv(value[2 : len(value)-1])
}

func validate(cfg *Config) error {
	switch cfg.ClickUp.AuthMode {
	case "token", "oauth":
	default:
		return fmt.Errorf("clickup.auth_mode must be \"token\" or \"oauth\", got %q", cfg.ClickUp.AuthMode)
	}
	if cfg.ClickUp.DefaultTeam == "" {
		return fmt.Errorf("clickup.default_team is required")
	}
	if cfg.ClickUp.Timeout <= 0 {
		return fmt.Errorf("clickup.timeout must be positive")
	}
	return nil
}
