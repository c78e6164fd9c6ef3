package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

// AddressCheck validates that an upstream stage actually produced a target
// address before any connectivity is attempted. Pure input validation, no
// network side effects.
type AddressCheck struct{}

func NewAddressCheck() *AddressCheck {
	return &AddressCheck{}
}

func (c *AddressCheck) Name() string {
	return "address"
}

func (c *AddressCheck) Run(ctx context.Context, target types.Target) (*types.CheckResult, error) {
	result := &types.CheckResult{
		Check:  c.Name(),
		Target: strings.TrimSpace(target.Address),
		Status: types.StatusPass,
	}

	if strings.TrimSpace(target.Address) == "" {
		result.Status = types.StatusFail
		result.Reason = types.ReasonEmptyAddress
		result.Error = "no address provided; was the deployment output exported?"
	}

	return result, nil
}

func (c *AddressCheck) FormatSummary(result *types.CheckResult, debug bool) string {
	if result.Succeeded() {
		return fmt.Sprintf("deployment address is set to: %s", result.Target)
	}
	summary := "deployment address is not set"
	if debug && result.Error != "" {
		summary += ": " + result.Error
	}
	return summary
}

func init() {
	DefaultRegistry.Register(NewAddressCheck())
}
