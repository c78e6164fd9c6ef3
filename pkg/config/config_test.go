package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Port != 22 {
		t.Errorf("Port = %d, want 22", cfg.Port)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d, want 5", cfg.TimeoutSeconds)
	}
	if cfg.AddressEnv != "VM_IP" {
		t.Errorf("AddressEnv = %q, want VM_IP", cfg.AddressEnv)
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reachcheck.yaml")
	content := []byte("port: 2222\ntimeout_seconds: 1\naddress_env: TARGET_HOST\njunit_path: report.xml\nping: true\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 2222 {
		t.Errorf("Port = %d, want 2222", cfg.Port)
	}
	if cfg.TimeoutSeconds != 1 {
		t.Errorf("TimeoutSeconds = %d, want 1", cfg.TimeoutSeconds)
	}
	if cfg.AddressEnv != "TARGET_HOST" {
		t.Errorf("AddressEnv = %q, want TARGET_HOST", cfg.AddressEnv)
	}
	if cfg.JUnitPath != "report.xml" {
		t.Errorf("JUnitPath = %q, want report.xml", cfg.JUnitPath)
	}
	if !cfg.Ping {
		t.Error("Expected Ping to be enabled")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: ":\n  - not yaml"},
		{name: "port out of range", content: "port: 70000\n"},
		{name: "negative timeout", content: "timeout_seconds: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "reachcheck.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestResolveAddress(t *testing.T) {
	env := map[string]string{"VM_IP": " 20.30.40.50 "}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	if got := cfg.ResolveAddress(lookup); got != "20.30.40.50" {
		t.Errorf("ResolveAddress() = %q, want trimmed env value", got)
	}

	cfg.Address = "10.0.0.4"
	if got := cfg.ResolveAddress(lookup); got != "10.0.0.4" {
		t.Errorf("ResolveAddress() = %q, want explicit config value to win", got)
	}

	cfg = Default()
	cfg.AddressEnv = "UNSET_VAR"
	if got := cfg.ResolveAddress(lookup); got != "" {
		t.Errorf("ResolveAddress() = %q, want empty for unset variable", got)
	}
}

func TestTargetFromConfig(t *testing.T) {
	cfg := Default()
	target := cfg.Target("10.0.0.4")

	if target.Address != "10.0.0.4" || target.Port != 22 || target.Timeout != 5*time.Second {
		t.Errorf("Unexpected target: %+v", target)
	}
	if err := target.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
