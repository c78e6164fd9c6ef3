package checks

import (
	"context"
	"time"

	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

const (
	// DefaultPort is the SSH port checked after a VM deployment
	DefaultPort = 22

	// DefaultTimeout is the default timeout for a single connection attempt
	DefaultTimeout = 5 * time.Second

	// DefaultAddressEnv is the environment variable the pipeline exports
	// the deployment output into
	DefaultAddressEnv = "VM_IP"
)

type Check interface {
	Name() string
	Run(ctx context.Context, target types.Target) (*types.CheckResult, error)

	// FormatSummary formats the result as a one-line human-readable
	// description for PASS/FAIL output. With debug set, it may include
	// extra detail such as latency or the raw error.
	FormatSummary(result *types.CheckResult, debug bool) string
}

// RunWithTimeout runs a single check attempt bounded by the target's timeout.
// The deadline applies to the whole attempt; a deadline-exceeded run is
// reported as a failed result with the "timeout" reason.
func RunWithTimeout(check Check, target types.Target) *types.CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), target.Timeout)
	defer cancel()

	startTime := time.Now()
	result, err := check.Run(ctx, target)
	endTime := time.Now()

	if result == nil {
		result = &types.CheckResult{
			Check:  check.Name(),
			Target: target.HostPort(),
		}
	}

	result.StartTime = startTime
	result.EndTime = endTime
	result.Elapsed = endTime.Sub(startTime)

	if err != nil {
		result.Status = types.StatusFail
		if ctx.Err() == context.DeadlineExceeded {
			result.Reason = types.ReasonTimeout
			result.Error = "timeout after " + target.Timeout.String()
		} else {
			if result.Reason == "" {
				result.Reason = types.ReasonUnreachable
			}
			result.Error = err.Error()
		}
	}

	return result
}
