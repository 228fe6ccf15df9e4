package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/tvdbxml/internal/config"
)

var (
	configInit   bool
	configAPIKey string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
	Long: `Show the effective configuration after environment overrides.

With --init the current settings are written to ~/.tvdbxml/config.json;
--api-key stores a key at the same time.`,
	Args: cobra.NoArgs,
	RunE: runConfigCommand,
}

func runConfigCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if configAPIKey != "" {
		cfg.APIKey = configAPIKey
	}
	if configInit || configAPIKey != "" {
		if err := cfg.Save(); err != nil {
			return err
		}
	}

	shown := *cfg
	shown.APIKey = maskKey(cfg.APIKey)
	return configView(&shown).print(cmd.OutOrStdout(), jsonOutput)
}

// maskKey keeps the last four characters of a key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func configView(cfg *config.Config) view {
	return view{data: cfg, table: func(w io.Writer) {
		path, _ := config.ConfigPath()
		detailTable(w, "Configuration", [][2]string{
			{"File", path},
			{"API key", cfg.APIKey},
			{"Language", cfg.Language},
			{"Base URL", cfg.BaseURL},
			{"Log level", cfg.LogLevel},
			{"Session logs", fmt.Sprintf("%t (%d days)", cfg.EnableLogging, cfg.LogRetentionDays)},
			{"Response cache", fmt.Sprintf("%t (%s)", cfg.CacheEnabled, cfg.CacheTTL())},
			{"Request budget", fmt.Sprintf("%d per %s", cfg.MaxRequests, cfg.RequestWindow())},
			{"Archive memo", cfg.BundleTTL().String()},
		})
	}}
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the configuration file")
	configCmd.Flags().StringVar(&configAPIKey, "api-key", "", "Store this API key")
	rootCmd.AddCommand(configCmd)
}
