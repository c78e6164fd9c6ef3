package checks

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

// TCPCheck verifies that the target accepts a TCP connection on its port.
// One attempt per invocation; the caller decides whether to re-invoke.
type TCPCheck struct{}

func NewTCPCheck() *TCPCheck {
	return &TCPCheck{}
}

func (c *TCPCheck) Name() string {
	return "tcp"
}

func (c *TCPCheck) Run(ctx context.Context, target types.Target) (*types.CheckResult, error) {
	result := &types.CheckResult{
		Check:  c.Name(),
		Target: target.HostPort(),
		Status: types.StatusPass,
	}

	if err := target.Validate(); err != nil {
		result.Status = types.StatusFail
		result.Error = err.Error()
		if strings.TrimSpace(target.Address) == "" {
			result.Reason = types.ReasonEmptyAddress
		} else {
			result.Reason = types.ReasonUnreachable
		}
		return result, nil
	}

	dialer := &net.Dialer{}
	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", target.HostPort())
	elapsed := time.Since(start)

	if conn != nil {
		defer conn.Close()
	}

	if err != nil {
		result.Status = types.StatusFail
		result.Reason = ClassifyDialError(err)
		result.Error = err.Error()
		if result.Reason == types.ReasonTimeout {
			result.Error = fmt.Sprintf("no connection within %v", target.Timeout)
		}
		return result, nil
	}

	result.Details = map[string]interface{}{
		"latency_ms": float64(elapsed.Microseconds()) / 1000.0,
	}

	return result, nil
}

// ClassifyDialError maps a dial error onto the closed reason set. Anything
// that is neither a DNS failure, a refusal, nor a timeout is reported as
// unreachable; the raw error stays available on the result.
func ClassifyDialError(err error) types.Reason {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return types.ReasonDNSFailure
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return types.ReasonConnectionRefused
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return types.ReasonTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return types.ReasonTimeout
	}
	return types.ReasonUnreachable
}

func (c *TCPCheck) FormatSummary(result *types.CheckResult, debug bool) string {
	switch result.Status {
	case types.StatusSkipped:
		return fmt.Sprintf("tcp connect skipped: %s", result.Error)
	case types.StatusPass:
		summary := fmt.Sprintf("port %s is open and accepting connections", result.Target)
		if debug {
			if latency, ok := result.Details["latency_ms"].(float64); ok {
				summary += fmt.Sprintf(" (%.2fms)", latency)
			}
		}
		return summary
	default:
		summary := fmt.Sprintf("port %s is not accessible", result.Target)
		if debug && result.Error != "" {
			summary += ": " + result.Error
		}
		return summary
	}
}

func init() {
	DefaultRegistry.Register(NewTCPCheck())
}
