package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_CHATBOT_TOKEN", "test-token")
	t.Setenv("OPENAI_API_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	if cfg.OpenAIModel != "gpt-4" {
		t.Errorf("OpenAIModel = %q, want gpt-4", cfg.OpenAIModel)
	}
	if cfg.Timezone != "America/Bogota" {
		t.Errorf("Timezone = %q, want America/Bogota", cfg.Timezone)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.SQLiteDBPath != "./data/records.db" {
		t.Errorf("SQLiteDBPath = %q", cfg.SQLiteDBPath)
	}
	if cfg.AMQPURL != "" {
		t.Errorf("AMQPURL should default to disabled, got %q", cfg.AMQPURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("TIMEZONE", "America/Lima")

	cfg := Load()

	if cfg.OpenAIModel != "gpt-4o" || cfg.DataBackend != "memory" || cfg.Timezone != "America/Lima" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			BotToken:     "token",
			OpenAIAPIKey: "key",
			OpenAIModel:  "gpt-4",
			Timezone:     "America/Bogota",
			DataBackend:  "memory",
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"missing bot token", func(c *Config) { c.BotToken = "" }, "TELEGRAM_CHATBOT_TOKEN"},
		{"missing openai key", func(c *Config) { c.OpenAIAPIKey = "" }, "OPENAI_API_KEY"},
		{"empty model", func(c *Config) { c.OpenAIModel = "" }, "model"},
		{"empty timezone", func(c *Config) { c.Timezone = "" }, "timezone"},
		{"invalid backend", func(c *Config) { c.DataBackend = "firestore" }, "invalid data backend"},
		{"sqlite without path", func(c *Config) { c.DataBackend = "sqlite"; c.SQLiteDBPath = "" }, "SQLite database path"},
		{"bad amqp scheme", func(c *Config) { c.AMQPURL = "http://localhost" }, "AMQP URL scheme"},
		{"amqp without queue", func(c *Config) { c.AMQPURL = "amqp://localhost"; c.AMQPExchange = "x" }, "queue"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{DataBackend: "nope"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"TELEGRAM_CHATBOT_TOKEN", "OPENAI_API_KEY", "invalid data backend"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q:\n%s", want, err)
		}
	}
}
