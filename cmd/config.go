package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-player/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for ytplayer.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [CATALOG_PATH] [DATABASE_URL]",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with the catalog location and database connection settings.`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var catalogPath, databaseURL string
		if len(args) > 0 {
			catalogPath = args[0]
		}
		if len(args) > 1 {
			databaseURL = args[1]
		}

		if err := config.InitConfig(catalogPath, databaseURL); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", configPath)
		fmt.Fprintln(cmd.OutOrStdout(), "Edit catalog.path, or set catalog.source to postgres and database_url to use a database catalog.")

		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration file path and the resolved settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file: %s\n\n", configPath)

		// Load and display current config
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "CATALOG_SOURCE: %s\n", cfg.Catalog.Source)
		fmt.Fprintf(cmd.OutOrStdout(), "CATALOG_PATH: %s\n", cfg.Catalog.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "DATABASE_URL: %s\n", cfg.DatabaseURL)
		fmt.Fprintf(cmd.OutOrStdout(), "LOG_LEVEL: %s\n", cfg.Log.Level)
		fmt.Fprintf(cmd.OutOrStdout(), "LOG_ENCODING: %s\n", cfg.Log.Encoding)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
