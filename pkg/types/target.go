package types

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Target identifies a single host/port to verify. It is built once from
// configuration and never mutated by a check.
type Target struct {
	Address string        `json:"address" yaml:"address"`
	Port    int           `json:"port" yaml:"port"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

func (t Target) Validate() error {
	if strings.TrimSpace(t.Address) == "" {
		return fmt.Errorf("target address is empty")
	}
	if t.Port < 1 || t.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", t.Port)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", t.Timeout)
	}
	return nil
}

// HostPort returns the dialable "address:port" form.
func (t Target) HostPort() string {
	return net.JoinHostPort(t.Address, strconv.Itoa(t.Port))
}

// IsHostname reports whether the address needs DNS resolution before dialing.
func (t Target) IsHostname() bool {
	return net.ParseIP(strings.TrimSpace(t.Address)) == nil
}
