package main

import "github.com/Taichi-iskw/yt-player/cmd"

func main() {
	cmd.Execute()
}
