package cmd

import (
	"github.com/Taichi-iskw/yt-player/cmd/player"
)

func init() {
	rootCmd.AddCommand(player.NewShellCommand(player.NewServiceFactory()))
}
