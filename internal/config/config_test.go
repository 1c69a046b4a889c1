package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "capacity: 5\nmenu_file: menu.csv\nlog_level: verbose\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Capacity: 5, MenuFile: "menu.csv", LogLevel: "verbose", LogFile: "stderr"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("yaml layer (-want +got):\n%s", diff)
	}

	t.Setenv("KITCHEN_CAPACITY", "12")
	t.Setenv("KITCHEN_LOG_FILE", "kitchen.log")

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want = Config{Capacity: 12, MenuFile: "menu.csv", LogLevel: "verbose", LogFile: "kitchen.log"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("env layer (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr error
	}{
		{name: "zero capacity", body: "capacity: 0\n", wantErr: ErrInvalid},
		{name: "negative env capacity", env: map[string]string{"KITCHEN_CAPACITY": "-3"}, wantErr: ErrInvalid},
		{name: "unknown field", body: "capactiy: 4\n"},
		{name: "bad env number", env: map[string]string{"KITCHEN_CAPACITY": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.body)

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Capacity != Default().Capacity {
		t.Fatalf("expected default capacity, got %d", cfg.Capacity)
	}
}
