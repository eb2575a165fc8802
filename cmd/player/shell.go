package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/logger"
	"github.com/Taichi-iskw/yt-player/internal/model"
	"github.com/Taichi-iskw/yt-player/internal/service/player"
)

const (
	welcomeMessage  = "Hello and welcome to YouTube, what would you like to do?\nEnter HELP for list of available commands or EXIT to terminate."
	goodbyeMessage  = "YouTube has now terminated its execution. Thank you and goodbye!"
	prompt          = "YT> "
	invalidCommand  = "Please enter a valid command, type HELP for a list of available commands."
	selectQuestion  = "Would you like to play any of the above? If yes, specify the number of the video."
	selectAssumeNo  = "If your answer is not a valid number, we will assume it's a no."
	variadicMaxArgs = -1
)

// command describes one shell keyword
type command struct {
	usage       string
	description string
	minArgs     int
	maxArgs     int
	run         func(s *Shell, args []string)
}

// commandOrder is the order HELP lists commands in
var commandOrder = []string{
	"NUMBER_OF_VIDEOS", "SHOW_ALL_VIDEOS", "PLAY", "PLAY_RANDOM", "STOP", "PAUSE", "CONTINUE",
	"SHOW_PLAYING", "CREATE_PLAYLIST", "ADD_TO_PLAYLIST", "REMOVE_FROM_PLAYLIST", "CLEAR_PLAYLIST",
	"DELETE_PLAYLIST", "SHOW_PLAYLIST", "SHOW_ALL_PLAYLISTS", "SEARCH_VIDEOS", "SEARCH_VIDEOS_WITH_TAG",
	"FLAG_VIDEO", "ALLOW_VIDEO", "HELP", "EXIT",
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"NUMBER_OF_VIDEOS":       {usage: "NUMBER_OF_VIDEOS", description: "Shows how many videos are in the library.", run: (*Shell).numberOfVideos},
		"SHOW_ALL_VIDEOS":        {usage: "SHOW_ALL_VIDEOS", description: "Lists all videos from the library.", run: (*Shell).showAllVideos},
		"PLAY":                   {usage: "PLAY <video_id>", description: "Plays specified video.", minArgs: 1, maxArgs: 1, run: (*Shell).play},
		"PLAY_RANDOM":            {usage: "PLAY_RANDOM", description: "Plays a random video from the library.", run: (*Shell).playRandom},
		"STOP":                   {usage: "STOP", description: "Stop the current video.", run: (*Shell).stop},
		"PAUSE":                  {usage: "PAUSE", description: "Pause the current video.", run: (*Shell).pause},
		"CONTINUE":               {usage: "CONTINUE", description: "Resume the current paused video.", run: (*Shell).continueVideo},
		"SHOW_PLAYING":           {usage: "SHOW_PLAYING", description: "Displays the video that is currently playing (or paused).", run: (*Shell).showPlaying},
		"CREATE_PLAYLIST":        {usage: "CREATE_PLAYLIST <playlist_name>", description: "Creates a new (empty) playlist with the provided name.", minArgs: 1, maxArgs: 1, run: (*Shell).createPlaylist},
		"ADD_TO_PLAYLIST":        {usage: "ADD_TO_PLAYLIST <playlist_name> <video_id>", description: "Adds the requested video to the playlist.", minArgs: 2, maxArgs: 2, run: (*Shell).addToPlaylist},
		"REMOVE_FROM_PLAYLIST":   {usage: "REMOVE_FROM_PLAYLIST <playlist_name> <video_id>", description: "Removes the specified video from the specified playlist.", minArgs: 2, maxArgs: 2, run: (*Shell).removeFromPlaylist},
		"CLEAR_PLAYLIST":         {usage: "CLEAR_PLAYLIST <playlist_name>", description: "Removes all videos from the playlist.", minArgs: 1, maxArgs: 1, run: (*Shell).clearPlaylist},
		"DELETE_PLAYLIST":        {usage: "DELETE_PLAYLIST <playlist_name>", description: "Deletes the playlist.", minArgs: 1, maxArgs: 1, run: (*Shell).deletePlaylist},
		"SHOW_PLAYLIST":          {usage: "SHOW_PLAYLIST <playlist_name>", description: "List all the videos in this playlist.", minArgs: 1, maxArgs: 1, run: (*Shell).showPlaylist},
		"SHOW_ALL_PLAYLISTS":     {usage: "SHOW_ALL_PLAYLISTS", description: "Display all the available playlists.", run: (*Shell).showAllPlaylists},
		"SEARCH_VIDEOS":          {usage: "SEARCH_VIDEOS <search_term>", description: "Display all the videos whose titles contain the search_term.", minArgs: 1, maxArgs: 1, run: (*Shell).searchVideos},
		"SEARCH_VIDEOS_WITH_TAG": {usage: "SEARCH_VIDEOS_WITH_TAG <tag_name>", description: "Display all videos whose tags contains the provided tag.", minArgs: 1, maxArgs: 1, run: (*Shell).searchVideosWithTag},
		"FLAG_VIDEO":             {usage: "FLAG_VIDEO <video_id> [flag_reason]", description: "Mark a video as flagged.", minArgs: 1, maxArgs: variadicMaxArgs, run: (*Shell).flagVideo},
		"ALLOW_VIDEO":            {usage: "ALLOW_VIDEO <video_id>", description: "Removes a flag from a video.", minArgs: 1, maxArgs: 1, run: (*Shell).allowVideo},
		"HELP":                   {usage: "HELP", description: "Displays help.", run: (*Shell).help},
		"EXIT":                   {usage: "EXIT", description: "Terminates the program execution."},
	}
}

// Shell reads line commands, runs them against the player and writes their results
type Shell struct {
	svc player.Service
	in  *bufio.Scanner
	out io.Writer
	log logger.Logger

	// Interactive prints the welcome banner and a prompt before each command
	Interactive bool
}

// NewShell creates a shell reading commands from in and writing to out
func NewShell(svc player.Service, in io.Reader, out io.Writer, log logger.Logger) *Shell {
	return &Shell{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run executes commands until EXIT, end of input or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	if s.Interactive {
		s.println(welcomeMessage)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Interactive {
			fmt.Fprint(s.out, prompt)
		}
		if !s.in.Scan() {
			break
		}
		if !s.Execute(s.in.Text()) {
			s.println(goodbyeMessage)
			return nil
		}
	}

	if err := s.in.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	s.log.Debug("end of input")
	return nil
}

// Execute runs a single command line and reports whether the shell should keep going
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	keyword := strings.ToUpper(fields[0])
	args := fields[1:]

	cmd, ok := commands[keyword]
	if !ok {
		s.log.Debugf("unknown command: %s", fields[0])
		s.println(invalidCommand)
		return true
	}
	if keyword == "EXIT" {
		return false
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs != variadicMaxArgs && len(args) > cmd.maxArgs) {
		s.printf("Usage: %s\n", cmd.usage)
		return true
	}

	if cmd.maxArgs == variadicMaxArgs {
		// the trailing argument keeps the spacing it was typed with
		args = splitFields(line, cmd.minArgs+2)[1:]
	}

	s.log.Debugf("executing %s %q", keyword, args)
	cmd.run(s, args)
	return true
}

// splitFields splits line on whitespace into at most n fields.
// The last field is the untouched remainder of the line, trimmed at both ends.
func splitFields(line string, n int) []string {
	var fields []string
	rest := strings.TrimSpace(line)
	for rest != "" && len(fields) < n-1 {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			break
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}

func (s *Shell) numberOfVideos(_ []string) {
	s.printf("%d videos in the library\n", s.svc.NumberOfVideos())
}

func (s *Shell) showAllVideos(_ []string) {
	s.println("Here's a list of all available videos:")
	for _, v := range s.svc.ShowAllVideos() {
		s.println(FormatVideo(v))
	}
}

func (s *Shell) play(args []string) {
	s.printPlay(s.svc.PlayVideo(args[0]))
}

func (s *Shell) playRandom(_ []string) {
	result, err := s.svc.PlayRandomVideo()
	if err != nil {
		s.println(apperrors.Message(err))
		return
	}
	s.printPlay(result, nil)
}

func (s *Shell) printPlay(result *player.PlayResult, err error) {
	if err != nil {
		s.fail("Cannot play video", err)
		return
	}
	if result.Stopped != nil {
		s.printf("Stopping video: %s\n", result.Stopped.Title)
	}
	s.printf("Playing video: %s\n", result.Playing.Title)
}

func (s *Shell) stop(_ []string) {
	video, err := s.svc.StopVideo()
	if err != nil {
		s.fail("Cannot stop video", err)
		return
	}
	s.printf("Stopping video: %s\n", video.Title)
}

func (s *Shell) pause(_ []string) {
	video, err := s.svc.PauseVideo()
	switch {
	case errors.Is(err, player.ErrAlreadyPaused):
		s.println(apperrors.Message(err))
	case err != nil:
		s.fail("Cannot pause video", err)
	default:
		s.printf("Pausing video: %s\n", video.Title)
	}
}

func (s *Shell) continueVideo(_ []string) {
	video, err := s.svc.ContinueVideo()
	if err != nil {
		s.fail("Cannot continue video", err)
		return
	}
	s.printf("Continuing video: %s\n", video.Title)
}

func (s *Shell) showPlaying(_ []string) {
	video, status := s.svc.ShowPlaying()
	if video == nil {
		s.println("No video is currently playing")
		return
	}
	line := "Currently playing: " + formatVideoInfo(video)
	if status == model.StatusPaused {
		line += " - PAUSED"
	}
	s.println(line)
}

func (s *Shell) createPlaylist(args []string) {
	if _, err := s.svc.CreatePlaylist(args[0]); err != nil {
		s.fail("Cannot create playlist", err)
		return
	}
	s.printf("Successfully created new playlist: %s\n", args[0])
}

func (s *Shell) addToPlaylist(args []string) {
	name := args[0]
	video, err := s.svc.AddVideoToPlaylist(name, args[1])
	if err != nil {
		s.fail("Cannot add video to "+name, err)
		return
	}
	s.printf("Added video to %s: %s\n", name, video.Title)
}

func (s *Shell) removeFromPlaylist(args []string) {
	name := args[0]
	video, err := s.svc.RemoveFromPlaylist(name, args[1])
	if err != nil {
		s.fail("Cannot remove video from "+name, err)
		return
	}
	s.printf("Removed video from %s: %s\n", name, video.Title)
}

func (s *Shell) clearPlaylist(args []string) {
	name := args[0]
	if err := s.svc.ClearPlaylist(name); err != nil {
		s.fail("Cannot clear playlist "+name, err)
		return
	}
	s.printf("Successfully removed all videos from %s\n", name)
}

func (s *Shell) deletePlaylist(args []string) {
	name := args[0]
	if err := s.svc.DeletePlaylist(name); err != nil {
		s.fail("Cannot delete playlist "+name, err)
		return
	}
	s.printf("Deleted playlist: %s\n", name)
}

func (s *Shell) showPlaylist(args []string) {
	name := args[0]
	_, videos, err := s.svc.ShowPlaylist(name)
	if err != nil {
		s.fail("Cannot show playlist "+name, err)
		return
	}

	s.printf("Showing playlist: %s\n", name)
	if len(videos) == 0 {
		s.println("No videos here yet")
		return
	}
	for _, v := range videos {
		s.println(FormatVideo(v))
	}
}

func (s *Shell) showAllPlaylists(_ []string) {
	playlists := s.svc.ShowAllPlaylists()
	if len(playlists) == 0 {
		s.println("No playlists exist yet")
		return
	}

	s.println("Showing all playlists:")
	for _, p := range playlists {
		s.println(p.Name)
	}
}

func (s *Shell) searchVideos(args []string) {
	s.offerResults(args[0], s.svc.SearchVideos(args[0]))
}

func (s *Shell) searchVideosWithTag(args []string) {
	s.offerResults(args[0], s.svc.SearchVideosWithTag(args[0]))
}

// offerResults lists search results and plays the one picked on the next input line
func (s *Shell) offerResults(query string, results []*model.Video) {
	if len(results) == 0 {
		s.printf("No search results for %s\n", query)
		return
	}

	s.printf("Here are the results for %s:\n", query)
	for i, v := range results {
		s.printf("%d) %s\n", i+1, formatVideoInfo(v))
	}
	s.println(selectQuestion)
	s.println(selectAssumeNo)

	if s.Interactive {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		return
	}
	choice, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
	if err != nil || choice < 1 || choice > len(results) {
		return
	}
	s.play([]string{results[choice-1].ID})
}

func (s *Shell) flagVideo(args []string) {
	var reason string
	if len(args) > 1 {
		reason = args[1]
	}
	result, err := s.svc.FlagVideo(args[0], reason)
	if err != nil {
		s.fail("Cannot flag video", err)
		return
	}
	if result.Stopped {
		s.printf("Stopping video: %s\n", result.Video.Title)
	}
	s.printf("Successfully flagged video: %s (reason: %s)\n", result.Video.Title, result.Video.FlagReason)
}

func (s *Shell) allowVideo(args []string) {
	video, err := s.svc.AllowVideo(args[0])
	if err != nil {
		s.fail("Cannot remove flag from video", err)
		return
	}
	s.printf("Successfully removed flag from video: %s\n", video.Title)
}

func (s *Shell) help(_ []string) {
	s.println("Available commands:")
	for _, keyword := range commandOrder {
		cmd := commands[keyword]
		s.printf("    %s - %s\n", cmd.usage, cmd.description)
	}
}

// fail prints "<action>: <message>" for a failed operation
func (s *Shell) fail(action string, err error) {
	s.printf("%s: %s\n", action, apperrors.Message(err))
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
