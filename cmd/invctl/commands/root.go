// Package commands implements the CLI commands for invctl.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	categorycmd "github.com/invops/invctl/cmd/invctl/commands/category"
	productcmd "github.com/invops/invctl/cmd/invctl/commands/product"
	usercmd "github.com/invops/invctl/cmd/invctl/commands/user"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "invctl",
	Short: "Inventory service administration client",
	Long: `invctl is the command-line client for administering an inventory service.

Use this tool to manage products, categories and users through the
inventory REST API. Sign in with 'invctl login'; the session survives
across invocations until you log out or the server rejects the credential.

Use "invctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Sync flags to cmdutil.Flags for subcommands.
		cmdutil.Flags.ServerURL, _ = cmd.Flags().GetString("server")
		cmdutil.Flags.Token, _ = cmd.Flags().GetString("token")
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Environment overrides: INVCTL_SERVER, INVCTL_TOKEN, INVCTL_OUTPUT.
	viper.SetEnvPrefix("invctl")
	viper.AutomaticEnv()
	viper.SetDefault("output", "table")

	rootCmd.PersistentFlags().String("server", viper.GetString("server"), "Server URL (overrides stored session)")
	rootCmd.PersistentFlags().String("token", viper.GetString("token"), "Bearer token (overrides stored session)")
	rootCmd.PersistentFlags().StringP("output", "o", viper.GetString("output"), "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(productcmd.Cmd)
	rootCmd.AddCommand(categorycmd.Cmd)
	rootCmd.AddCommand(usercmd.Cmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
