package checks

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

// DNSCheck resolves the target address when it is a hostname. Literal IP
// addresses pass trivially so the check can always run ahead of the TCP
// connect without caring what form the deployment output took.
type DNSCheck struct {
	Resolver *net.Resolver
}

func NewDNSCheck() *DNSCheck {
	return &DNSCheck{}
}

func (c *DNSCheck) Name() string {
	return "dns"
}

func (c *DNSCheck) Run(ctx context.Context, target types.Target) (*types.CheckResult, error) {
	result := &types.CheckResult{
		Check:  c.Name(),
		Target: strings.TrimSpace(target.Address),
		Status: types.StatusPass,
	}

	if strings.TrimSpace(target.Address) == "" {
		result.Status = types.StatusFail
		result.Reason = types.ReasonEmptyAddress
		result.Error = "no address to resolve"
		return result, nil
	}

	if !target.IsHostname() {
		result.Details = map[string]interface{}{
			"literal_ip": true,
		}
		return result, nil
	}

	resolver := c.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	start := time.Now()
	ips, err := resolver.LookupIP(ctx, "ip", result.Target)
	elapsed := time.Since(start)

	result.Details = map[string]interface{}{
		"latency_ms": float64(elapsed.Microseconds()) / 1000.0,
	}

	if err != nil {
		result.Status = types.StatusFail
		result.Reason = types.ReasonDNSFailure
		result.Error = err.Error()
		return result, nil
	}

	resolved := make([]string, 0, len(ips))
	for _, ip := range ips {
		resolved = append(resolved, ip.String())
	}
	result.Details["resolved_ips"] = resolved

	return result, nil
}

func (c *DNSCheck) FormatSummary(result *types.CheckResult, debug bool) string {
	if result.Status == types.StatusSkipped {
		return fmt.Sprintf("dns lookup skipped: %s", result.Error)
	}
	if !result.Succeeded() {
		summary := fmt.Sprintf("dns lookup for %s failed", result.Target)
		if debug && result.Error != "" {
			summary += ": " + result.Error
		}
		return summary
	}

	if literal, ok := result.Details["literal_ip"].(bool); ok && literal {
		return fmt.Sprintf("%s is a literal IP, no resolution needed", result.Target)
	}

	summary := fmt.Sprintf("%s resolves", result.Target)
	if ips, ok := result.Details["resolved_ips"].([]string); ok && len(ips) > 0 {
		summary = fmt.Sprintf("%s resolves to %s", result.Target, strings.Join(ips, ", "))
	}
	if debug {
		if latency, ok := result.Details["latency_ms"].(float64); ok {
			summary += fmt.Sprintf(" (%.2fms)", latency)
		}
	}
	return summary
}

func init() {
	DefaultRegistry.Register(NewDNSCheck())
}
