package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tvdbxml",
	Short: "Query the TVDB legacy XML catalog",
	Long: `tvdbxml looks up series, seasons, episodes, cast and artwork in the TVDB
legacy XML interface and prints them as tables or JSON.

Responses are cached on disk and every invocation is recorded in a session log
under ~/.tvdbxml/logs. The parse command decodes downloaded .xml and .zip files
without touching the network.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

var (
	langFlag   string
	jsonOutput bool
	logLevel   string
)

func init() {
	// Global flags for all commands
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Catalog language, e.g. en or de (defaults to the configured language)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON instead of tables")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error or off")
}
