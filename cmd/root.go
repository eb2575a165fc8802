package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytplayer",
	Short: "A command line video player over a YouTube-style catalog",
	Long: `ytplayer loads a catalog of videos and lets you play, pause, search,
flag and organise them into playlists from a line-based shell.

The catalog comes from a text or YAML file, or from a PostgreSQL database
populated with "ytplayer catalog import".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
