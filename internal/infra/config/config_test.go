package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the config env vars for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envKeyAPIKey, "")
	t.Setenv(envKeyAPIURL, "")
	os.Unsetenv(envKeyAPIKey) //nolint:errcheck
	os.Unsetenv(envKeyAPIURL) //nolint:errcheck
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "sk-test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want sk-test", cfg.APIKey)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default %q", cfg.APIURL, DefaultAPIURL)
	}
}

func TestLoad_EnvOverridesDefaultURL(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "sk-test")
	t.Setenv(envKeyAPIURL, "http://localhost:9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:9090" {
		t.Errorf("APIURL = %q, want http://localhost:9090", cfg.APIURL)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "membridge.yaml")
	data := "api_key: yaml-key\napi_url: https://memory.example.com\nhttp_addr: \":8765\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "yaml-key" {
		t.Errorf("APIKey = %q, want yaml-key", cfg.APIKey)
	}
	if cfg.APIURL != "https://memory.example.com" {
		t.Errorf("APIURL = %q, want https://memory.example.com", cfg.APIURL)
	}
	if cfg.HTTPAddr != ":8765" {
		t.Errorf("HTTPAddr = %q, want :8765", cfg.HTTPAddr)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "env-key")

	path := filepath.Join(t.TempDir(), "membridge.yaml")
	if err := os.WriteFile(path, []byte("api_key: yaml-key\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key (env must win over file)", cfg.APIKey)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default when file omits it", cfg.APIURL)
	}
}

func TestLoad_UnreadableFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv(envKeyAPIKey, "sk-test")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
