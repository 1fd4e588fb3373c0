package config

import (
	"os"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	os.Setenv("CASTFORGE_DB_PATH", "/tmp/castforge-test.db")
	os.Setenv("CASTFORGE_GROQ_API_KEY", "gsk_test")
	os.Setenv("CASTFORGE_API_TOKEN", "test_token")
	t.Cleanup(func() {
		os.Unsetenv("CASTFORGE_DB_PATH")
		os.Unsetenv("CASTFORGE_GROQ_API_KEY")
		os.Unsetenv("CASTFORGE_API_TOKEN")
	})
}

func TestLoadConfig(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.DBPath != "/tmp/castforge-test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Timezone != "Asia/Jakarta" {
		t.Errorf("expected default timezone, got %s", cfg.Timezone)
	}
	if cfg.RetentionDays != 90 {
		t.Errorf("expected default retention 90, got %d", cfg.RetentionDays)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	os.Unsetenv("CASTFORGE_DB_PATH")
	os.Unsetenv("CASTFORGE_GROQ_API_KEY")
	os.Unsetenv("CASTFORGE_API_TOKEN")

	if _, err := Load(); err == nil {
		t.Error("expected error when missing required config")
	}
}

func TestLoadConfigMissingProviderKey(t *testing.T) {
	setRequired(t)
	os.Unsetenv("CASTFORGE_GROQ_API_KEY")

	if _, err := Load(); err == nil {
		t.Error("expected error when provider credential absent")
	}
}

func TestValidToken(t *testing.T) {
	cfg := &Config{APIToken: "secret"}

	if !cfg.ValidToken("secret") {
		t.Error("expected configured token to validate")
	}
	if cfg.ValidToken("wrong") {
		t.Error("wrong token must not validate")
	}
	if cfg.ValidToken("") {
		t.Error("empty token must not validate")
	}

	empty := &Config{}
	if empty.ValidToken("") {
		t.Error("empty configured token must never validate")
	}
}

func TestRetentionDaysOverride(t *testing.T) {
	setRequired(t)
	os.Setenv("CASTFORGE_RETENTION_DAYS", "30")
	defer os.Unsetenv("CASTFORGE_RETENTION_DAYS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.RetentionDays != 30 {
		t.Errorf("retention = %d, want 30", cfg.RetentionDays)
	}
}
