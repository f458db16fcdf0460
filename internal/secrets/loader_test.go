package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrefersFileOverValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file \n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	secret, err := Load(Source{Name: "api key", File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "from-file" {
		t.Fatalf("expected file secret, got %q", secret)
	}
}

func TestLoadFallsBackToEnv(t *testing.T) {
	t.Setenv("HIRESMART_TEST_SECRET", " from-env ")

	secret, err := Load(Source{Name: "api key", Env: "HIRESMART_TEST_SECRET"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "from-env" {
		t.Fatalf("expected env secret, got %q", secret)
	}
}

func TestLoadErrorsWhenNothingConfigured(t *testing.T) {
	if _, err := Load(Source{Name: "api key"}); err == nil {
		t.Fatal("expected error when no source is usable")
	}
}

func TestLoadErrorsOnEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	if _, err := Load(Source{Name: "api key", File: path}); err == nil {
		t.Fatal("expected error for empty secret file")
	}
}
