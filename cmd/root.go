package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labforge",
	Short: "Provision lab VMs on Google Cloud",
	Long: `Labforge provisions short-lived lab virtual machines on Google Cloud.

The serve subcommand runs the HTTP provisioning endpoint; provision
submits a request to a running server.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
