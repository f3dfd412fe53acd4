package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.json")

	secrets := `{
	"key": "test-api-key",
	"secret": "test-api-secret",
	"user": "eric"
}`
	if err := os.WriteFile(path, []byte(secrets), 0644); err != nil {
		t.Fatalf("failed to write secrets file: %v", err)
	}

	creds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if creds.APIKey != "test-api-key" {
		t.Errorf("expected APIKey test-api-key, got %q", creds.APIKey)
	}
	if creds.APISecret != "test-api-secret" {
		t.Errorf("expected APISecret test-api-secret, got %q", creds.APISecret)
	}
	if creds.Username != "eric" {
		t.Errorf("expected Username eric, got %q", creds.Username)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing secrets file, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write secrets file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed secrets file, got nil")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("malformed file should not report ErrNotFound")
	}
}

func TestLoad_MissingFields(t *testing.T) {
	// Field presence is not validated at load time; missing fields load
	// as empty strings and are rejected downstream.
	path := filepath.Join(t.TempDir(), "secrets.json")
	if err := os.WriteFile(path, []byte(`{"key": "only-a-key"}`), 0644); err != nil {
		t.Fatalf("failed to write secrets file: %v", err)
	}

	creds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if creds.APIKey != "only-a-key" {
		t.Errorf("expected APIKey only-a-key, got %q", creds.APIKey)
	}
	if creds.APISecret != "" {
		t.Errorf("expected empty APISecret, got %q", creds.APISecret)
	}
	if creds.Username != "" {
		t.Errorf("expected empty Username, got %q", creds.Username)
	}
}
