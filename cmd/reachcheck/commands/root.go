package commands

import (
	"github.com/spf13/cobra"
)

var (
	version   string
	commit    string
	buildDate string
)

func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildDate = b
}

var rootCmd = &cobra.Command{
	Use:   "reachcheck",
	Short: "Post-deployment VM reachability verifier",
	Long: `Verifies that a freshly provisioned VM is reachable: the deployment
produced an address, the address resolves, and the SSH port accepts a TCP
connection within a timeout. Intended to run from a CI pipeline after the
provisioning stage exports the VM address (by default via VM_IP).`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().String("config", "", "Path to yaml config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
}
