package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FOLDER_ID", "b1g-folder")
	t.Setenv("API_KEY", "secret")
	t.Setenv("MODEL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FolderID != "b1g-folder" || cfg.APIKey != "secret" {
		t.Fatalf("unexpected credentials: %+v", cfg)
	}
	if cfg.Model != "qwen3-235b-a22b-fp8/latest" {
		t.Fatalf("unexpected default model: %q", cfg.Model)
	}
	if cfg.Port != 8000 {
		t.Fatalf("unexpected default port: %d", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FOLDER_ID", "b1g-folder")
	t.Setenv("API_KEY", "secret")
	t.Setenv("MODEL", "yandexgpt/latest")
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "yandexgpt/latest" {
		t.Fatalf("unexpected model: %q", cfg.Model)
	}
	if cfg.Port != 9100 {
		t.Fatalf("unexpected port: %d", cfg.Port)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("FOLDER_ID", "b1g-folder")
	t.Setenv("API_KEY", "secret")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8000 {
		t.Fatalf("expected default port on bad value, got %d", cfg.Port)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("FOLDER_ID", "")
	t.Setenv("API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing credentials")
	}
	if !strings.Contains(err.Error(), "FOLDER_ID and API_KEY") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSystemPromptNotEmpty(t *testing.T) {
	if strings.TrimSpace(SystemPrompt) == "" {
		t.Fatalf("system prompt must not be empty")
	}
}
