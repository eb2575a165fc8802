package player

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewShellCommand creates the interactive player shell command
func NewShellCommand(factory *ServiceFactory) *cobra.Command {
	var (
		catalogPath string
		scriptPath  string
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the video player shell",
		Long: `Load the video catalog and read player commands line by line.

Commands are read from stdin, or from a script file with --script.
Type HELP inside the shell for the list of commands.`,
		Example: `  ytplayer shell
  ytplayer shell --catalog videos.txt
  ytplayer shell --catalog videos.yaml --script commands.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, log, err := factory.CreateService(ctx, catalogPath)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			in := cmd.InOrStdin()
			interactive := isTerminal(in)
			if scriptPath != "" {
				f, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
				interactive = false
			}

			shell := NewShell(svc, in, cmd.OutOrStdout(), log)
			shell.Interactive = interactive

			log.Infof("shell started with %d videos", svc.NumberOfVideos())
			return shell.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file to load instead of the configured source")
	cmd.Flags().StringVar(&scriptPath, "script", "", "Read commands from a file instead of stdin")

	return cmd
}

// isTerminal reports whether r is a character device such as an interactive stdin
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
