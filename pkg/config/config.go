package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ryanelliottsmith/reachcheck/pkg/checks"
	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

// Config holds the tool configuration. Precedence when building a target:
// command-line flags override the environment, which overrides the config
// file, which overrides built-in defaults. Environment reads happen only
// here; checks always receive an explicit Target.
type Config struct {
	// Address is an explicit target address. Usually empty: pipelines
	// export the deployment output into the AddressEnv variable instead.
	Address string `yaml:"address"`

	// AddressEnv names the environment variable holding the address.
	AddressEnv string `yaml:"address_env"`

	Port           int    `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	JUnitPath      string `yaml:"junit_path"`
	Ping           bool   `yaml:"ping"`
	PingPrivileged bool   `yaml:"ping_privileged"`
}

// Default returns the built-in configuration: SSH port, 5s timeout, VM_IP.
func Default() Config {
	return Config{
		AddressEnv:     checks.DefaultAddressEnv,
		Port:           checks.DefaultPort,
		TimeoutSeconds: int(checks.DefaultTimeout / time.Second),
	}
}

// Load reads configuration from a yaml file. A missing file falls back to
// defaults; an unreadable or invalid file is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range 1-65535", cfg.Port)
	}
	if cfg.TimeoutSeconds <= 0 {
		return Config{}, errors.New("timeout_seconds must be positive")
	}
	if cfg.AddressEnv == "" {
		cfg.AddressEnv = checks.DefaultAddressEnv
	}
	return cfg, nil
}

// ResolveAddress returns the target address: the explicit config value if
// set, otherwise the configured environment variable. lookupEnv is injected
// so resolution is testable without touching process state.
func (c Config) ResolveAddress(lookupEnv func(string) (string, bool)) string {
	if strings.TrimSpace(c.Address) != "" {
		return strings.TrimSpace(c.Address)
	}
	if value, ok := lookupEnv(c.AddressEnv); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// Target builds the immutable check target for the given address.
func (c Config) Target(address string) types.Target {
	return types.Target{
		Address: address,
		Port:    c.Port,
		Timeout: time.Duration(c.TimeoutSeconds) * time.Second,
	}
}
