package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"METALOC_API_KEY", "METALOC_BASE_URL", "METALOC_MODEL", "OPENAI_API_KEY"} {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("METALOC_API_KEY", "sk-test")
	t.Setenv("METALOC_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("METALOC_MODEL", "test-model")

	cfg := Load()
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Model != "test-model" {
		t.Errorf("Model = %q", cfg.Model)
	}
}

func TestLoad_OpenAIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	if cfg := Load(); cfg.APIKey != "sk-openai" {
		t.Errorf("APIKey = %q, want sk-openai", cfg.APIKey)
	}

	t.Setenv("METALOC_API_KEY", "sk-metaloc")
	if cfg := Load(); cfg.APIKey != "sk-metaloc" {
		t.Errorf("METALOC_API_KEY should win, got %q", cfg.APIKey)
	}
}
