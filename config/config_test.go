package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("CLICKUP_TOKEN", "pk_env")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg_env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ClickUp.Token != "pk_env" {
		t.Errorf("expected token from env, got %q", cfg.ClickUp.Token)
	}
	if cfg.Telegram.BotToken != "tg_env" {
		t.Errorf("expected bot token from env, got %q", cfg.Telegram.BotToken)
	}
	if cfg.ClickUp.DefaultTeam != "Simbio IT" || cfg.ClickUp.AuthMode != "token" {
		t.Errorf("unexpected clickup defaults: %+v", cfg.ClickUp)
	}
	if cfg.ClickUp.Timeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.ClickUp.Timeout)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.ReplayGuard.Size != 1000 || cfg.ReplayGuard.TTL != 10*time.Minute {
		t.Errorf("unexpected defaults: %+v %+v", cfg.HTTPServer, cfg.ReplayGuard)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{ClickUp: ClickUpConfig{AuthMode: "token", DefaultTeam: "Simbio IT", Timeout: time.Second}}
	}

	if err := validate(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := base()
	bad.ClickUp.AuthMode = "basic"
	if err := validate(bad); err == nil {
		t.Errorf("expected auth mode error")
	}

	bad = base()
	bad.ClickUp.DefaultTeam = ""
	if err := validate(bad); err == nil {
		t.Errorf("expected default team error")
	}

	bad = base()
	bad.ClickUp.Timeout = 0
	if err := validate(bad); err == nil {
		t.Errorf("expected timeout error")
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("CLICKUP_TEST_SECRET", "from-env")

	if got := expandEnvVar("${CLICKUP_TEST_SECRET}"); got != "from-env" {
		t.Errorf("expected from-env, got %q", got)
	}
	if got := expandEnvVar("${CLICKUP_TEST_UNSET_VAR}"); got != "" {
		t.Errorf("expected empty for unset var, got %q", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expected literal, got %q", got)
	}
}
