package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ryanelliottsmith/reachcheck/pkg/checks"
	"github.com/ryanelliottsmith/reachcheck/pkg/config"
	"github.com/ryanelliottsmith/reachcheck/pkg/output"
	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the post-deployment reachability suite",
	Long: `Run the full reachability suite against the deployed VM: validate that
an address was produced, resolve it when it is a hostname, and confirm the
target port accepts a TCP connection. ICMP echo can be added with --ping.
Checks run sequentially, one attempt each; the exit code is non-zero if any
check failed.`,
	RunE: runVerify,
}

func init() {
	addTargetFlags(verifyCmd)
	verifyCmd.Flags().Bool("ping", false, "Also run the ICMP echo check")
	verifyCmd.Flags().Bool("privileged", false, "Use raw ICMP sockets for ping (requires CAP_NET_RAW)")
	verifyCmd.Flags().String("junit", "", "Write a JUnit XML report to this path")
}

// addTargetFlags registers the flags shared by verify and the standalone
// check subcommands. Flag values override the environment and config file.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("address", "", "Target address (overrides config and the address environment variable)")
	cmd.Flags().IntP("port", "p", checks.DefaultPort, "TCP port to check")
	cmd.Flags().Duration("timeout", checks.DefaultTimeout, "Timeout for a single connection attempt")
}

// resolveTarget builds the check target with flags > environment > config
// file > defaults precedence.
func resolveTarget(cmd *cobra.Command) (types.Target, config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return types.Target{}, cfg, err
	}

	if address, _ := cmd.Flags().GetString("address"); strings.TrimSpace(address) != "" {
		cfg.Address = address
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	target := cfg.Target(cfg.ResolveAddress(os.LookupEnv))
	if cmd.Flags().Changed("timeout") {
		target.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	return target, cfg, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	target, cfg, err := resolveTarget(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	debug, _ := cmd.Flags().GetBool("debug")

	ping, _ := cmd.Flags().GetBool("ping")
	if !cmd.Flags().Changed("ping") {
		ping = cfg.Ping
	}
	privileged, _ := cmd.Flags().GetBool("privileged")
	if !cmd.Flags().Changed("privileged") {
		privileged = cfg.PingPrivileged
	}
	junitPath, _ := cmd.Flags().GetString("junit")
	if junitPath == "" {
		junitPath = cfg.JUnitPath
	}

	summary := types.NewSummary(uuid.NewString())
	textMode := format == "text"

	record := func(result *types.CheckResult) error {
		summary.Add(result)
		if textMode {
			return output.PrintResult(os.Stdout, result, format, debug)
		}
		return nil
	}

	addressResult := checks.RunWithTimeout(checks.NewAddressCheck(), target)
	if err := record(addressResult); err != nil {
		return err
	}

	if addressResult.Succeeded() {
		if target.IsHostname() {
			if err := record(checks.RunWithTimeout(checks.NewDNSCheck(), target)); err != nil {
				return err
			}
		}
		if err := record(checks.RunWithTimeout(checks.NewTCPCheck(), target)); err != nil {
			return err
		}
		if ping {
			if err := record(checks.RunWithTimeout(checks.NewPingCheck(0, privileged), target)); err != nil {
				return err
			}
		}
	} else {
		// No address means nothing to connect to; report the
		// connectivity checks as skipped rather than failing them twice.
		if err := record(types.SkippedResult("tcp", "", "no address to test")); err != nil {
			return err
		}
		if ping {
			if err := record(types.SkippedResult("ping", "", "no address to test")); err != nil {
				return err
			}
		}
	}

	summary.Finish()

	if err := output.PrintSummary(os.Stdout, summary, format); err != nil {
		return err
	}

	if junitPath != "" {
		if err := output.WriteJUnitFile(junitPath, summary); err != nil {
			return err
		}
	}

	if !summary.AllPassed() {
		return fmt.Errorf("%d of %d checks failed", summary.Failed, summary.Total)
	}
	return nil
}
