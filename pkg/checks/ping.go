package checks

import (
	"context"
	"fmt"
	"strings"
	"time"

	probing "github.com/prometheus-community/pro-bing"
	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

// DefaultPingCount is the number of echo requests sent per check
const DefaultPingCount = 3

// PingCheck sends ICMP echo requests to the target. It is a secondary,
// opt-in signal: unprivileged UDP mode is the default so the tool works on
// CI agents without CAP_NET_RAW, and TCP connect remains the primary check.
type PingCheck struct {
	Count      int
	Privileged bool
}

func NewPingCheck(count int, privileged bool) *PingCheck {
	if count == 0 {
		count = DefaultPingCount
	}
	return &PingCheck{
		Count:      count,
		Privileged: privileged,
	}
}

func (c *PingCheck) Name() string {
	return "ping"
}

func (c *PingCheck) Run(ctx context.Context, target types.Target) (*types.CheckResult, error) {
	result := &types.CheckResult{
		Check:  c.Name(),
		Target: strings.TrimSpace(target.Address),
		Status: types.StatusPass,
	}

	if strings.TrimSpace(target.Address) == "" {
		result.Status = types.StatusFail
		result.Reason = types.ReasonEmptyAddress
		result.Error = "no address to ping"
		return result, nil
	}

	pinger, err := probing.NewPinger(result.Target)
	if err != nil {
		result.Status = types.StatusFail
		result.Reason = ClassifyDialError(err)
		result.Error = err.Error()
		return result, nil
	}

	pinger.SetPrivileged(c.Privileged)
	pinger.Count = c.Count
	pinger.Timeout = target.Timeout
	pinger.Interval = 200 * time.Millisecond

	if err := pinger.RunWithContext(ctx); err != nil {
		result.Status = types.StatusFail
		result.Reason = types.ReasonUnreachable
		result.Error = fmt.Sprintf("ping failed: %v", err)
		return result, nil
	}

	stats := pinger.Statistics()

	result.Details = map[string]interface{}{
		"packets_sent":        stats.PacketsSent,
		"packets_received":    stats.PacketsRecv,
		"packet_loss_percent": stats.PacketLoss,
		"avg_latency_ms":      float64(stats.AvgRtt.Microseconds()) / 1000.0,
	}

	// Any echo reply proves reachability; only total silence fails.
	if stats.PacketsRecv == 0 {
		result.Status = types.StatusFail
		result.Reason = types.ReasonTimeout
		result.Error = fmt.Sprintf("no echo replies within %v", target.Timeout)
	}

	return result, nil
}

func (c *PingCheck) FormatSummary(result *types.CheckResult, debug bool) string {
	if result.Status == types.StatusSkipped {
		return fmt.Sprintf("icmp echo skipped: %s", result.Error)
	}
	if !result.Succeeded() {
		summary := fmt.Sprintf("%s does not answer icmp echo", result.Target)
		if debug && result.Error != "" {
			summary += ": " + result.Error
		}
		return summary
	}

	summary := fmt.Sprintf("%s answers icmp echo", result.Target)
	if debug {
		sent, _ := result.Details["packets_sent"].(int)
		received, _ := result.Details["packets_received"].(int)
		avg, _ := result.Details["avg_latency_ms"].(float64)
		summary += fmt.Sprintf(" (%d sent, %d received, avg %.2fms)", sent, received, avg)
	}
	return summary
}

func init() {
	DefaultRegistry.Register(NewPingCheck(0, false))
}
