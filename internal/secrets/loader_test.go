package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  file-secret\n"), 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	got, err := Load(Source{Name: "gemini api key", File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "file-secret" {
		t.Fatalf("expected file to take precedence, got %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, []byte("   "), 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	_, err := Load(Source{Name: "gemini api key", File: path})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestLoadInlineAndEnv(t *testing.T) {
	t.Setenv("PLACEMENT_TEST_KEY", " env-secret ")

	got, err := Load(Source{Value: " inline ", Env: "PLACEMENT_TEST_KEY"})
	if err != nil || got != "inline" {
		t.Fatalf("expected inline value, got %q (%v)", got, err)
	}

	got, err = Load(Source{Env: "PLACEMENT_TEST_KEY"})
	if err != nil || got != "env-secret" {
		t.Fatalf("expected env value, got %q (%v)", got, err)
	}
}

func TestLoadNotConfigured(t *testing.T) {
	t.Setenv("PLACEMENT_TEST_MISSING", "")

	_, err := Load(Source{Name: "gemini api key", Env: "PLACEMENT_TEST_MISSING"})
	if err == nil || !strings.Contains(err.Error(), "set PLACEMENT_TEST_MISSING") {
		t.Fatalf("expected hint about env variable, got %v", err)
	}

	_, err = Load(Source{})
	if err == nil || err.Error() != "secret is not configured" {
		t.Fatalf("unexpected error: %v", err)
	}
}
