package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryanelliottsmith/reachcheck/pkg/checks"
	"github.com/ryanelliottsmith/reachcheck/pkg/output"
	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single check",
	Long:  "Run one reachability check in isolation, without the full verify suite.",
}

var checkAddressCmd = &cobra.Command{
	Use:   "address",
	Short: "Validate that a target address was provided",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, checks.NewAddressCheck())
	},
}

var checkDNSCmd = &cobra.Command{
	Use:   "dns",
	Short: "Test DNS resolution of the target address",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, checks.NewDNSCheck())
	},
}

var checkTCPCmd = &cobra.Command{
	Use:   "tcp",
	Short: "Test TCP connectivity to the target port",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, checks.NewTCPCheck())
	},
}

var checkPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test ICMP connectivity to the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		privileged, _ := cmd.Flags().GetBool("privileged")
		return runSingle(cmd, checks.NewPingCheck(count, privileged))
	},
}

func runSingle(cmd *cobra.Command, check checks.Check) error {
	cmd.SilenceUsage = true

	target, _, err := resolveTarget(cmd)
	if err != nil {
		return err
	}

	result := checks.RunWithTimeout(check, target)

	format, _ := cmd.Flags().GetString("output")
	debug, _ := cmd.Flags().GetBool("debug")
	if err := output.PrintResult(os.Stdout, result, format, debug); err != nil {
		return err
	}

	if result.Status == types.StatusFail {
		return fmt.Errorf("%s check failed (%s)", result.Check, result.Reason)
	}
	return nil
}

func init() {
	checkCmd.AddCommand(checkAddressCmd)
	checkCmd.AddCommand(checkDNSCmd)
	checkCmd.AddCommand(checkTCPCmd)
	checkCmd.AddCommand(checkPingCmd)

	addTargetFlags(checkAddressCmd)
	addTargetFlags(checkDNSCmd)
	addTargetFlags(checkTCPCmd)
	addTargetFlags(checkPingCmd)

	checkPingCmd.Flags().Int("count", checks.DefaultPingCount, "Number of echo requests to send")
	checkPingCmd.Flags().Bool("privileged", false, "Use raw ICMP sockets (requires CAP_NET_RAW)")
}
